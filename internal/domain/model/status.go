package model

// Status is the discrete training status used to pick a cell's visual treatment.
type Status string

const (
	StatusInapplicable Status = "inapplicable"
	StatusValid        Status = "valid"
	StatusWarning      Status = "warning"
	StatusExpired      Status = "expired"

	// StatusUndetermined is returned for an applicable record without an exam
	// date. It is not a visual status: callers leave the prior treatment as-is.
	StatusUndetermined Status = "undetermined"
)

// IsDetermined reports whether s maps to a visual treatment.
func (s Status) IsDetermined() bool {
	switch s {
	case StatusInapplicable, StatusValid, StatusWarning, StatusExpired:
		return true
	default:
		return false
	}
}

// Rank orders the date-driven statuses along a record's lifetime:
// Valid (1) < Warning (2) < Expired (3). Other statuses rank 0.
func (s Status) Rank() int {
	switch s {
	case StatusValid:
		return 1
	case StatusWarning:
		return 2
	case StatusExpired:
		return 3
	default:
		return 0
	}
}

// Statuses lists the determined statuses in display order.
func Statuses() []Status {
	return []Status{StatusValid, StatusWarning, StatusExpired, StatusInapplicable}
}
