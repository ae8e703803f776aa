package application

import "github.com/ericfisherdev/trainingpanel/internal/domain/model"

// RecordForm groups the cell controllers edited together and tracks whether
// any of them received input since the last submit.
type RecordForm struct {
	cells []*CellController
	dirty bool
}

// NewRecordForm creates an empty form.
func NewRecordForm() *RecordForm {
	return &RecordForm{}
}

// Add attaches c to the form. Any later input event on c marks the form as
// having unsaved changes.
func (f *RecordForm) Add(c *CellController) {
	c.onInput = f.markDirty
	f.cells = append(f.cells, c)
}

// Cells returns the form's controllers in the order they were added.
func (f *RecordForm) Cells() []*CellController {
	return f.cells
}

// HasUnsavedChanges reports whether input was received since the last Submit.
func (f *RecordForm) HasUnsavedChanges() bool {
	return f.dirty
}

// RefreshAll re-classifies every cell at the current instant.
func (f *RecordForm) RefreshAll() {
	for _, c := range f.cells {
		c.Refresh()
	}
}

// Submit clears the unsaved-changes flag and returns the current records.
func (f *RecordForm) Submit() []model.TrainingRecord {
	f.dirty = false

	records := make([]model.TrainingRecord, 0, len(f.cells))
	for _, c := range f.cells {
		records = append(records, c.Record())
	}
	return records
}

func (f *RecordForm) markDirty() {
	f.dirty = true
}
