package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/trainingpanel/internal/application"
	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
)

func TestSummarize_Counts(t *testing.T) {
	clock := &fakeClock{now: date(2023, time.November, 1)}
	roster := testRoster()

	summary := application.Summarize(application.BuildMatrix(roster, clock, time.UTC), roster, 30)

	assert.Equal(t, 2, summary.TotalEmployees)
	assert.Equal(t, 2, summary.TotalDepartments)
	assert.Equal(t, 2, summary.TotalTrainingTypes)
	assert.Equal(t, map[model.Status]int{
		model.StatusValid:        1,
		model.StatusWarning:      1,
		model.StatusExpired:      1,
		model.StatusInapplicable: 1,
	}, summary.StatusCounts)
}

func TestSummarize_ExpiredList(t *testing.T) {
	clock := &fakeClock{now: date(2023, time.November, 1)}
	roster := testRoster()

	summary := application.Summarize(application.BuildMatrix(roster, clock, time.UTC), roster, 30)

	require.Len(t, summary.Expired, 1)
	assert.Equal(t, "Ivanov Ivan", summary.Expired[0].EmployeeName)
	assert.Equal(t, "Operations", summary.Expired[0].DepartmentName)
	assert.Equal(t, "Electrical safety", summary.Expired[0].TrainingName)
	assert.Equal(t, date(2023, time.June, 1), summary.Expired[0].NextDueDate)
	assert.Empty(t, summary.Upcoming)
}

func TestSummarize_UpcomingWindowIsInclusive(t *testing.T) {
	roster := testRoster()

	t.Run("due date exactly at horizon is upcoming", func(t *testing.T) {
		clock := &fakeClock{now: date(2023, time.December, 16)}
		summary := application.Summarize(application.BuildMatrix(roster, clock, time.UTC), roster, 30)

		require.Len(t, summary.Upcoming, 1)
		assert.Equal(t, "Petrova Anna", summary.Upcoming[0].EmployeeName)
		assert.Equal(t, date(2024, time.January, 15), summary.Upcoming[0].NextDueDate)
	})

	t.Run("due date one day past horizon is not upcoming", func(t *testing.T) {
		clock := &fakeClock{now: date(2023, time.December, 15)}
		summary := application.Summarize(application.BuildMatrix(roster, clock, time.UTC), roster, 30)

		assert.Empty(t, summary.Upcoming)
	})

	t.Run("due today later in the day is upcoming", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2024, time.January, 15, 18, 0, 0, 0, time.UTC)}
		summary := application.Summarize(application.BuildMatrix(roster, clock, time.UTC), roster, 30)

		require.Len(t, summary.Upcoming, 1)
		assert.Equal(t, "Petrova Anna", summary.Upcoming[0].EmployeeName)
	})
}

func TestSummarize_InapplicableNeverListed(t *testing.T) {
	clock := &fakeClock{now: date(2030, time.January, 1)}
	roster := model.Roster{
		TrainingTypes: []model.TrainingType{{Name: "Heights", ValidityMonths: 12}},
		Employees: []model.Employee{{
			LastName: "Orlov",
			Records: []model.TrainingRecord{
				{TrainingName: "Heights", ExamDate: datePtr(2020, time.January, 1), Applicable: false},
			},
		}},
	}

	summary := application.Summarize(application.BuildMatrix(roster, clock, time.UTC), roster, 30)

	assert.Empty(t, summary.Expired)
	assert.Empty(t, summary.Upcoming)
	assert.Equal(t, 1, summary.StatusCounts[model.StatusInapplicable])
}

func TestSummarize_SortedByDueDate(t *testing.T) {
	clock := &fakeClock{now: date(2025, time.January, 1)}
	roster := testRoster()

	summary := application.Summarize(application.BuildMatrix(roster, clock, time.UTC), roster, 30)

	require.Len(t, summary.Expired, 2)
	assert.True(t, summary.Expired[0].NextDueDate.Before(summary.Expired[1].NextDueDate))
}

func TestSummarize_NegativeHorizonUsesDefault(t *testing.T) {
	clock := &fakeClock{now: date(2023, time.November, 1)}
	roster := testRoster()

	summary := application.Summarize(application.BuildMatrix(roster, clock, time.UTC), roster, -1)

	assert.Equal(t, application.DefaultUpcomingDays, summary.UpcomingDays)
}
