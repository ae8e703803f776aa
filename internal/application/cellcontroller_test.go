package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/trainingpanel/internal/application"
	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
)

type treatmentEvent struct {
	status    model.Status
	treatment model.Treatment
}

func recordEvents(c *application.CellController) *[]treatmentEvent {
	events := &[]treatmentEvent{}
	c.OnTreatmentChange(func(s model.Status, tr model.Treatment) {
		*events = append(*events, treatmentEvent{status: s, treatment: tr})
	})
	return events
}

func TestCellController_InitialClassification(t *testing.T) {
	clock := &fakeClock{now: date(2023, time.November, 1)}
	rec := model.TrainingRecord{ExamDate: datePtr(2023, time.January, 15), Applicable: true}

	c := application.NewCellController(rec, 12, clock, time.UTC)

	assert.Equal(t, model.StatusWarning, c.Status())
	assert.Equal(t, model.Treatment{Class: "status-warning"}, c.Treatment())
}

func TestCellController_UndeterminedLeavesNoTreatment(t *testing.T) {
	clock := &fakeClock{now: date(2023, time.November, 1)}

	c := application.NewCellController(model.TrainingRecord{Applicable: true}, 12, clock, time.UTC)

	assert.Equal(t, model.StatusUndetermined, c.Status())
	assert.Equal(t, model.Treatment{}, c.Treatment())
}

func TestCellController_DateChange(t *testing.T) {
	clock := &fakeClock{now: date(2024, time.February, 1)}
	c := application.NewCellController(model.TrainingRecord{Applicable: true}, 12, clock, time.UTC)
	events := recordEvents(c)

	require.NoError(t, c.OnExamDateChange("2023-01-15"))
	assert.Equal(t, model.StatusExpired, c.Status())
	assert.Equal(t, model.Treatment{Class: "status-expired", Pulse: true}, c.Treatment())

	require.NoError(t, c.OnExamDateChange("01.12.2023"))
	assert.Equal(t, model.StatusValid, c.Status())

	assert.Equal(t, []treatmentEvent{
		{model.StatusExpired, model.Treatment{Class: "status-expired", Pulse: true}},
		{model.StatusValid, model.Treatment{Class: "status-valid"}},
	}, *events)
}

func TestCellController_InvalidDateRejected(t *testing.T) {
	clock := &fakeClock{now: date(2023, time.September, 1)}
	rec := model.TrainingRecord{ExamDate: datePtr(2023, time.January, 15), Applicable: true}
	c := application.NewCellController(rec, 12, clock, time.UTC)

	err := c.OnExamDateChange("31.02.2023")

	require.ErrorIs(t, err, application.ErrInvalidExamDate)
	assert.Equal(t, datePtr(2023, time.January, 15), c.Record().ExamDate)
	assert.Equal(t, model.StatusValid, c.Status())
}

func TestCellController_ClearingDateKeepsPriorTreatment(t *testing.T) {
	clock := &fakeClock{now: date(2024, time.February, 1)}
	rec := model.TrainingRecord{ExamDate: datePtr(2023, time.January, 15), Applicable: true}
	c := application.NewCellController(rec, 12, clock, time.UTC)
	events := recordEvents(c)

	require.NoError(t, c.OnExamDateChange(""))

	assert.Equal(t, model.StatusUndetermined, c.Status())
	assert.Equal(t, model.Treatment{Class: "status-expired", Pulse: true}, c.Treatment())
	assert.Empty(t, *events)
}

func TestCellController_ApplicabilityToggle(t *testing.T) {
	clock := &fakeClock{now: date(2023, time.September, 1)}
	rec := model.TrainingRecord{ExamDate: datePtr(2023, time.January, 15), Applicable: true}
	c := application.NewCellController(rec, 12, clock, time.UTC)
	events := recordEvents(c)

	require.NoError(t, c.OnApplicabilityChange("false"))
	assert.Equal(t, model.StatusInapplicable, c.Status())
	assert.Equal(t, model.Treatment{Class: "status-inapplicable"}, c.Treatment())

	require.NoError(t, c.OnApplicabilityChange("true"))
	assert.Equal(t, model.StatusValid, c.Status())

	err := c.OnApplicabilityChange("perhaps")
	require.ErrorIs(t, err, application.ErrInvalidApplicability)
	assert.True(t, c.Record().Applicable)

	assert.Len(t, *events, 2)
}

func TestCellController_ReadsClockOnEveryEvaluation(t *testing.T) {
	clock := &fakeClock{now: date(2023, time.September, 1)}
	rec := model.TrainingRecord{ExamDate: datePtr(2023, time.January, 15), Applicable: true}
	c := application.NewCellController(rec, 12, clock, time.UTC)
	events := recordEvents(c)

	clock.set(date(2023, time.November, 1))
	assert.Equal(t, model.StatusWarning, c.Refresh())

	clock.set(date(2023, time.November, 2))
	assert.Equal(t, model.StatusWarning, c.Refresh())

	clock.set(date(2024, time.February, 1))
	assert.Equal(t, model.StatusExpired, c.Refresh())

	// Unchanged treatments are not re-announced.
	assert.Len(t, *events, 2)
}

func TestCellController_Snapshot(t *testing.T) {
	clock := &fakeClock{now: date(2023, time.March, 1)}
	rec := model.TrainingRecord{
		TrainingName:   "Electrical safety",
		ExamDate:       datePtr(2023, time.January, 31),
		ValidityMonths: 1,
		Applicable:     true,
		ProtocolNumber: "17-A",
	}
	c := application.NewCellController(rec, 12, clock, time.UTC)

	cell := c.Snapshot()

	assert.Equal(t, "Electrical safety", cell.TrainingName)
	assert.Equal(t, 1, cell.ValidityMonths)
	assert.Equal(t, "17-A", cell.ProtocolNumber)
	assert.True(t, cell.HasRecord)
	assert.Equal(t, datePtr(2023, time.February, 28), cell.NextDueDate)
	assert.Equal(t, datePtr(2022, time.November, 28), cell.WarningThreshold)
	assert.Equal(t, model.StatusExpired, cell.Status)
	assert.True(t, cell.Treatment.Pulse)
}

func TestCellController_SnapshotWithoutExamDate(t *testing.T) {
	clock := &fakeClock{now: date(2023, time.March, 1)}
	c := application.NewCellController(model.TrainingRecord{Applicable: true}, 0, clock, time.UTC)

	cell := c.Snapshot()

	assert.Nil(t, cell.NextDueDate)
	assert.Nil(t, cell.WarningThreshold)
	assert.Equal(t, model.DefaultValidityMonths, cell.ValidityMonths)
}
