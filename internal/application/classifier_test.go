package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/trainingpanel/internal/application"
	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func TestAddCalendarMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"plain forward", date(2023, time.January, 15), 12, date(2024, time.January, 15)},
		{"plain backward", date(2024, time.January, 15), -3, date(2023, time.October, 15)},
		{"clamp to february non-leap", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"clamp to february leap", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamp to 30-day month", date(2023, time.March, 31), 1, date(2023, time.April, 30)},
		{"backward from clamped date", date(2023, time.February, 28), -3, date(2022, time.November, 28)},
		{"backward clamp", date(2023, time.May, 31), -3, date(2023, time.February, 28)},
		{"leap day plus a year", date(2024, time.February, 29), 12, date(2025, time.February, 28)},
		{"zero months", date(2023, time.July, 4), 0, date(2023, time.July, 4)},
		{"across many years", date(2020, time.December, 31), 26, date(2023, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, application.AddCalendarMonths(tt.start, tt.months))
		})
	}
}

func TestAddCalendarMonths_PreservesClockAndLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	start := time.Date(2023, time.January, 31, 14, 30, 5, 7, loc)

	got := application.AddCalendarMonths(start, 1)

	assert.Equal(t, time.Date(2023, time.February, 28, 14, 30, 5, 7, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestDueDates(t *testing.T) {
	t.Run("twelve-month validity", func(t *testing.T) {
		nextDue, threshold := application.DueDates(date(2023, time.January, 15), 12)
		assert.Equal(t, date(2024, time.January, 15), nextDue)
		assert.Equal(t, date(2023, time.October, 15), threshold)
	})

	t.Run("month-end clamp both directions", func(t *testing.T) {
		nextDue, threshold := application.DueDates(date(2023, time.January, 31), 1)
		assert.Equal(t, date(2023, time.February, 28), nextDue)
		assert.Equal(t, date(2022, time.November, 28), threshold)
	})

	t.Run("non-positive validity uses default", func(t *testing.T) {
		nextDue, _ := application.DueDates(date(2023, time.January, 15), 0)
		assert.Equal(t, date(2024, time.January, 15), nextDue)

		nextDue, _ = application.DueDates(date(2023, time.January, 15), -5)
		assert.Equal(t, date(2024, time.January, 15), nextDue)
	})
}

func TestClassify_TwelveMonthValidity(t *testing.T) {
	exam := datePtr(2023, time.January, 15)

	t.Run("before warning threshold -> Valid", func(t *testing.T) {
		assert.Equal(t, model.StatusValid, application.Classify(date(2023, time.September, 1), exam, 12, true))
	})

	t.Run("inside warning window -> Warning", func(t *testing.T) {
		assert.Equal(t, model.StatusWarning, application.Classify(date(2023, time.November, 1), exam, 12, true))
	})

	t.Run("after next due date -> Expired", func(t *testing.T) {
		assert.Equal(t, model.StatusExpired, application.Classify(date(2024, time.February, 1), exam, 12, true))
	})
}

func TestClassify_MissingExamDate(t *testing.T) {
	for _, now := range []time.Time{date(1990, time.May, 1), date(2023, time.June, 1), date(2100, time.January, 1)} {
		for _, validity := range []int{0, 1, 12, 60} {
			assert.Equal(t, model.StatusUndetermined, application.Classify(now, nil, validity, true),
				"now=%s validity=%d", now, validity)
		}
	}
}

func TestClassify_InapplicableTakesPrecedence(t *testing.T) {
	exams := []*time.Time{nil, datePtr(2023, time.January, 15), datePtr(1999, time.December, 31)}
	nows := []time.Time{date(2000, time.January, 1), date(2023, time.November, 1), date(2030, time.January, 1)}

	for _, exam := range exams {
		for _, now := range nows {
			for _, validity := range []int{0, 1, 12, 36} {
				assert.Equal(t, model.StatusInapplicable, application.Classify(now, exam, validity, false))
			}
		}
	}
}

func TestClassify_BoundariesAreExclusive(t *testing.T) {
	exam := datePtr(2023, time.January, 15)
	nextDue, threshold := application.DueDates(*exam, 12)

	t.Run("now equal to next due date -> Warning", func(t *testing.T) {
		assert.Equal(t, model.StatusWarning, application.Classify(nextDue, exam, 12, true))
	})

	t.Run("one nanosecond after next due date -> Expired", func(t *testing.T) {
		assert.Equal(t, model.StatusExpired, application.Classify(nextDue.Add(time.Nanosecond), exam, 12, true))
	})

	t.Run("now equal to warning threshold -> Valid", func(t *testing.T) {
		assert.Equal(t, model.StatusValid, application.Classify(threshold, exam, 12, true))
	})

	t.Run("one nanosecond after warning threshold -> Warning", func(t *testing.T) {
		assert.Equal(t, model.StatusWarning, application.Classify(threshold.Add(time.Nanosecond), exam, 12, true))
	})
}

func TestClassify_DefaultValidity(t *testing.T) {
	exam := datePtr(2023, time.January, 15)
	for now := date(2022, time.June, 1); now.Before(date(2024, time.June, 1)); now = now.AddDate(0, 0, 3) {
		assert.Equal(t,
			application.Classify(now, exam, 12, true),
			application.Classify(now, exam, 0, true),
			"now=%s", now)
	}
}

// TestClassify_PartitionAndMonotonicity sweeps now across the lifetime of many
// records, including month-end exam dates, and checks that every evaluation
// lands in exactly one date-driven status and never moves backwards.
func TestClassify_PartitionAndMonotonicity(t *testing.T) {
	exams := []time.Time{
		date(2023, time.January, 15),
		date(2023, time.January, 31),
		date(2024, time.February, 29),
		date(2023, time.August, 31),
		date(2023, time.December, 31),
	}

	for _, exam := range exams {
		for _, validity := range []int{1, 2, 3, 4, 6, 12, 24, 36} {
			nextDue, _ := application.DueDates(exam, validity)

			prevRank := 0
			for now := exam.AddDate(-2, 0, 0); now.Before(nextDue.AddDate(1, 0, 0)); now = now.Add(12 * time.Hour) {
				status := application.Classify(now, &exam, validity, true)

				require.Contains(t,
					[]model.Status{model.StatusValid, model.StatusWarning, model.StatusExpired},
					status, "exam=%s validity=%d now=%s", exam, validity, now)
				require.GreaterOrEqual(t, status.Rank(), prevRank,
					"status moved backwards: exam=%s validity=%d now=%s", exam, validity, now)

				prevRank = status.Rank()
			}
			assert.Equal(t, model.StatusExpired.Rank(), prevRank, "exam=%s validity=%d", exam, validity)
		}
	}
}

func TestClassifyRecord_ValidityFallback(t *testing.T) {
	now := date(2023, time.November, 1)
	exam := datePtr(2023, time.January, 15)

	t.Run("record validity wins over training type", func(t *testing.T) {
		rec := model.TrainingRecord{ExamDate: exam, ValidityMonths: 36, Applicable: true}
		assert.Equal(t, model.StatusValid, application.ClassifyRecord(now, rec, 12))
	})

	t.Run("training type validity used when record has none", func(t *testing.T) {
		rec := model.TrainingRecord{ExamDate: exam, Applicable: true}
		assert.Equal(t, model.StatusExpired, application.ClassifyRecord(now, rec, 6))
	})

	t.Run("default used when neither is set", func(t *testing.T) {
		rec := model.TrainingRecord{ExamDate: exam, Applicable: true}
		assert.Equal(t, model.StatusWarning, application.ClassifyRecord(now, rec, 0))
	})
}

func TestTreatmentFor(t *testing.T) {
	tests := []struct {
		status  model.Status
		want    model.Treatment
		applied bool
	}{
		{model.StatusValid, model.Treatment{Class: "status-valid"}, true},
		{model.StatusWarning, model.Treatment{Class: "status-warning"}, true},
		{model.StatusExpired, model.Treatment{Class: "status-expired", Pulse: true}, true},
		{model.StatusInapplicable, model.Treatment{Class: "status-inapplicable"}, true},
		{model.StatusUndetermined, model.Treatment{}, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got, applied := application.TreatmentFor(tt.status)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.applied, applied)
		})
	}
}
