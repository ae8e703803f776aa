package application

import (
	"sort"
	"time"

	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
)

// FirstWorkingDay returns midnight of the first Monday-to-Friday day of t's
// month. Public holidays are not considered.
func FirstWorkingDay(t time.Time) time.Time {
	y, m, _ := t.Date()
	day := time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// IsFirstWorkingDay reports whether t falls on the first working day of its
// month.
func IsFirstWorkingDay(t time.Time) bool {
	return startOfDay(t).Equal(FirstWorkingDay(t))
}

// WarningStartsInMonth returns every applicable, dated record whose warning
// threshold falls within now's calendar month, first and last day included.
// All records are considered, not only the latest per training type. The
// record's own validity wins over its training type's, which in turn falls
// back to the default. Items are ordered by warning start, then employee and
// training name.
func WarningStartsInMonth(roster model.Roster, now time.Time) []model.RequestItem {
	loc := now.Location()
	y, m, _ := now.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	last := time.Date(y, m, daysIn(y, m, loc), 0, 0, 0, 0, loc)

	items := []model.RequestItem{}
	for _, emp := range roster.Employees {
		dept, _ := roster.Department(emp.DepartmentCode)

		for _, rec := range emp.Records {
			if !rec.Applicable || rec.ExamDate == nil {
				continue
			}

			tt, _ := roster.TrainingType(rec.TrainingName)
			nextDue, threshold := DueDates(*rec.ExamDate, recordValidity(rec, tt.ValidityMonths))

			// Compare calendar days only; the threshold carries the exam
			// date's clock and location.
			ty, tm, td := threshold.Date()
			start := time.Date(ty, tm, td, 0, 0, 0, 0, loc)
			if start.Before(first) || start.After(last) {
				continue
			}

			items = append(items, model.RequestItem{
				EmployeeName:   emp.FullName(),
				Position:       emp.Position,
				DepartmentName: dept.Name,
				TrainingName:   rec.TrainingName,
				ExamDate:       *rec.ExamDate,
				NextDueDate:    nextDue,
				WarningStart:   threshold,
				ProtocolNumber: rec.ProtocolNumber,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.WarningStart.Equal(b.WarningStart) {
			return a.WarningStart.Before(b.WarningStart)
		}
		if a.EmployeeName != b.EmployeeName {
			return a.EmployeeName < b.EmployeeName
		}
		return a.TrainingName < b.TrainingName
	})

	return items
}

// BuildTrainingRequest assembles the training request for now's month.
func BuildTrainingRequest(roster model.Roster, now time.Time) model.TrainingRequest {
	y, m, _ := now.Date()
	return model.TrainingRequest{
		EvaluatedAt:       now,
		Month:             time.Date(y, m, 1, 0, 0, 0, 0, now.Location()),
		FirstWorkingDay:   FirstWorkingDay(now),
		IsFirstWorkingDay: IsFirstWorkingDay(now),
		Items:             WarningStartsInMonth(roster, now),
	}
}
