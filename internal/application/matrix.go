package application

import (
	"sort"
	"strings"
	"time"

	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
	"github.com/ericfisherdev/trainingpanel/internal/domain/port/driven"
)

// BuildMatrix lays the roster out as employees × training types. Each cell is
// driven by a CellController over the employee's latest record for that
// training type. Rows are ordered by last name then first name, columns by
// training type name.
func BuildMatrix(roster model.Roster, clock driven.Clock, loc *time.Location) model.StatusMatrix {
	types := make([]model.TrainingType, len(roster.TrainingTypes))
	copy(types, roster.TrainingTypes)
	sort.SliceStable(types, func(i, j int) bool {
		return strings.ToLower(types[i].Name) < strings.ToLower(types[j].Name)
	})

	employees := make([]model.Employee, len(roster.Employees))
	copy(employees, roster.Employees)
	sort.SliceStable(employees, func(i, j int) bool {
		if employees[i].LastName != employees[j].LastName {
			return employees[i].LastName < employees[j].LastName
		}
		return employees[i].FirstName < employees[j].FirstName
	})

	// One reading of the clock for the whole grid, so cells and the summary
	// derived from EvaluatedAt agree even across midnight.
	evaluatedAt := clock.Now()
	at := frozenClock{at: evaluatedAt}

	matrix := model.StatusMatrix{
		EvaluatedAt:   evaluatedAt,
		TrainingTypes: types,
		Rows:          make([]model.MatrixRow, 0, len(employees)),
	}

	for _, emp := range employees {
		dept, _ := roster.Department(emp.DepartmentCode)
		row := model.MatrixRow{
			Employee:   emp,
			Department: dept,
			Cells:      make([]model.TrainingCell, 0, len(types)),
		}

		for _, tt := range types {
			rec, ok := latestRecord(emp.Records, tt.Name)
			if !ok {
				row.Cells = append(row.Cells, model.TrainingCell{
					TrainingName:   tt.Name,
					ValidityMonths: EffectiveValidityMonths(tt.ValidityMonths),
					Status:         model.StatusUndetermined,
				})
				continue
			}
			row.Cells = append(row.Cells, NewCellController(rec, tt.ValidityMonths, at, loc).Snapshot())
		}

		matrix.Rows = append(matrix.Rows, row)
	}

	return matrix
}

// frozenClock reports one fixed instant.
type frozenClock struct {
	at time.Time
}

func (c frozenClock) Now() time.Time { return c.at }

// latestRecord returns the record for trainingName with the most recent exam
// date. Records without an exam date only win when no dated record exists;
// among equal dates the later entry wins.
func latestRecord(records []model.TrainingRecord, trainingName string) (model.TrainingRecord, bool) {
	var latest model.TrainingRecord
	found := false

	for _, rec := range records {
		if rec.TrainingName != trainingName {
			continue
		}
		if !found || !examBefore(rec.ExamDate, latest.ExamDate) {
			latest = rec
			found = true
		}
	}

	return latest, found
}

// examBefore reports whether a is strictly earlier than b, treating a missing
// date as earlier than any date.
func examBefore(a, b *time.Time) bool {
	switch {
	case a == nil:
		return b != nil
	case b == nil:
		return false
	default:
		return a.Before(*b)
	}
}
