package application

import (
	"sort"
	"time"

	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
)

// DefaultUpcomingDays is the dashboard horizon for upcoming exams.
const DefaultUpcomingDays = 30

// Summarize aggregates a matrix into dashboard counters. Upcoming items are
// applicable cells whose next due date falls between today and today plus
// upcomingDays, both inclusive. Expired items are cells whose status is
// expired. Both lists are ordered by due date.
func Summarize(matrix model.StatusMatrix, roster model.Roster, upcomingDays int) model.DashboardSummary {
	if upcomingDays < 0 {
		upcomingDays = DefaultUpcomingDays
	}

	summary := model.DashboardSummary{
		EvaluatedAt:        matrix.EvaluatedAt,
		TotalEmployees:     len(roster.Employees),
		TotalDepartments:   len(roster.Departments),
		TotalTrainingTypes: len(roster.TrainingTypes),
		StatusCounts:       make(map[model.Status]int, len(model.Statuses())),
		UpcomingDays:       upcomingDays,
		Upcoming:           []model.DueItem{},
		Expired:            []model.DueItem{},
	}
	for _, s := range model.Statuses() {
		summary.StatusCounts[s] = 0
	}

	today := startOfDay(matrix.EvaluatedAt)
	horizon := today.AddDate(0, 0, upcomingDays)

	for _, row := range matrix.Rows {
		for _, cell := range row.Cells {
			if !cell.HasRecord {
				continue
			}
			if cell.Status.IsDetermined() {
				summary.StatusCounts[cell.Status]++
			}
			if !cell.Applicable || cell.NextDueDate == nil {
				continue
			}

			item := model.DueItem{
				EmployeeName:   row.Employee.FullName(),
				DepartmentName: row.Department.Name,
				TrainingName:   cell.TrainingName,
				NextDueDate:    *cell.NextDueDate,
				ProtocolNumber: cell.ProtocolNumber,
			}

			due := *cell.NextDueDate
			if !due.Before(today) && !due.After(horizon) {
				summary.Upcoming = append(summary.Upcoming, item)
			}
			if cell.Status == model.StatusExpired {
				summary.Expired = append(summary.Expired, item)
			}
		}
	}

	sortDueItems(summary.Upcoming)
	sortDueItems(summary.Expired)

	return summary
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sortDueItems(items []model.DueItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].NextDueDate.Equal(items[j].NextDueDate) {
			return items[i].NextDueDate.Before(items[j].NextDueDate)
		}
		return items[i].EmployeeName < items[j].EmployeeName
	})
}
