package application

import (
	"fmt"
	"time"

	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
	"github.com/ericfisherdev/trainingpanel/internal/domain/port/driven"
)

// TreatmentListener is called with the new status and treatment each time a cell's
// applied treatment changes.
type TreatmentListener func(status model.Status, treatment model.Treatment)

// CellController owns one training cell: its record state, its input event
// handlers and the treatment currently applied to it. Every handler
// re-classifies the record against the clock read at that moment.
//
// A CellController is driven by a single event loop and is not safe for
// concurrent use.
type CellController struct {
	clock        driven.Clock
	loc          *time.Location
	record       model.TrainingRecord
	typeValidity int

	status    model.Status
	applied   model.Treatment
	listeners []TreatmentListener
	onInput   func()
}

// NewCellController creates a controller for rec. typeValidityMonths is the
// training type's validity period, used when rec does not carry its own.
// The initial status is computed immediately.
func NewCellController(rec model.TrainingRecord, typeValidityMonths int, clock driven.Clock, loc *time.Location) *CellController {
	if loc == nil {
		loc = time.UTC
	}
	c := &CellController{
		clock:        clock,
		loc:          loc,
		record:       rec,
		typeValidity: typeValidityMonths,
		status:       model.StatusUndetermined,
	}
	c.Refresh()
	return c
}

// OnTreatmentChange registers fn to be called whenever the applied treatment
// changes.
func (c *CellController) OnTreatmentChange(fn TreatmentListener) {
	c.listeners = append(c.listeners, fn)
}

// OnExamDateChange handles a new value of the exam date input. Empty input
// clears the exam date. Malformed input is rejected and leaves the record
// unchanged.
func (c *CellController) OnExamDateChange(raw string) error {
	c.notifyInput()

	examDate, err := ParseExamDate(raw, c.loc)
	if err != nil {
		return fmt.Errorf("exam date change: %w", err)
	}

	c.record.ExamDate = examDate
	c.Refresh()
	return nil
}

// OnApplicabilityChange handles a new value of the applicability choice.
func (c *CellController) OnApplicabilityChange(raw string) error {
	c.notifyInput()

	applicable, err := ParseApplicability(raw)
	if err != nil {
		return fmt.Errorf("applicability change: %w", err)
	}

	c.record.Applicable = applicable
	c.Refresh()
	return nil
}

// Refresh re-classifies the record at the current instant and applies the
// resulting treatment. An undetermined status keeps the prior treatment.
func (c *CellController) Refresh() model.Status {
	c.status = ClassifyRecord(c.clock.Now(), c.record, c.typeValidity)

	treatment, ok := TreatmentFor(c.status)
	if !ok || treatment == c.applied {
		return c.status
	}

	c.applied = treatment
	for _, fn := range c.listeners {
		fn(c.status, treatment)
	}
	return c.status
}

// Status returns the result of the most recent classification.
func (c *CellController) Status() model.Status {
	return c.status
}

// Treatment returns the currently applied treatment. It is the zero value
// until a determined status has been computed.
func (c *CellController) Treatment() model.Treatment {
	return c.applied
}

// Record returns a copy of the controller's current record.
func (c *CellController) Record() model.TrainingRecord {
	return c.record
}

// Snapshot returns the computed cell view for the controller's record.
func (c *CellController) Snapshot() model.TrainingCell {
	validity := recordValidity(c.record, c.typeValidity)
	cell := model.TrainingCell{
		TrainingName:   c.record.TrainingName,
		ExamDate:       c.record.ExamDate,
		ValidityMonths: validity,
		Applicable:     c.record.Applicable,
		ProtocolNumber: c.record.ProtocolNumber,
		Status:         c.status,
		Treatment:      c.applied,
		HasRecord:      true,
	}

	if c.record.ExamDate != nil {
		nextDue, threshold := DueDates(*c.record.ExamDate, validity)
		cell.NextDueDate = &nextDue
		cell.WarningThreshold = &threshold
	}

	return cell
}

func (c *CellController) notifyInput() {
	if c.onInput != nil {
		c.onInput()
	}
}
