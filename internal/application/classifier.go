package application

import (
	"time"

	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
)

// AddCalendarMonths adds n calendar months (n may be negative) to t. When the
// target month has fewer days than t's day of month, the day is clamped to the
// last day of the target month: Jan 31 + 1 month is Feb 28 (Feb 29 in leap
// years). The clock time and location of t are preserved.
func AddCalendarMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	// time.Date normalises month overflow in both directions.
	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first.Year(), first.Month(), t.Location()); day > last {
		day = last
	}

	return time.Date(first.Year(), first.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// EffectiveValidityMonths returns months, or model.DefaultValidityMonths when
// months is not positive.
func EffectiveValidityMonths(months int) int {
	if months <= 0 {
		return model.DefaultValidityMonths
	}
	return months
}

// DueDates returns the next due date (exam date plus the validity period) and
// the warning threshold (next due date minus the warning window). Both use
// AddCalendarMonths so month-end clamping is applied the same way in each
// direction.
func DueDates(examDate time.Time, validityMonths int) (nextDue, warningThreshold time.Time) {
	nextDue = AddCalendarMonths(examDate, EffectiveValidityMonths(validityMonths))
	warningThreshold = AddCalendarMonths(nextDue, -model.WarningWindowMonths)
	return nextDue, warningThreshold
}

// Classify computes the training status of a record at instant now.
//
// Applicability takes precedence over all date logic. An applicable record
// without an exam date is StatusUndetermined. Otherwise the status is Expired
// once now is strictly after the next due date, Warning once now is strictly
// after the warning threshold, and Valid before that. A validityMonths of
// zero or less means the default of 12 months.
func Classify(now time.Time, examDate *time.Time, validityMonths int, applicable bool) model.Status {
	if !applicable {
		return model.StatusInapplicable
	}
	if examDate == nil {
		return model.StatusUndetermined
	}

	nextDue, warningThreshold := DueDates(*examDate, validityMonths)

	switch {
	case now.After(nextDue):
		return model.StatusExpired
	case now.After(warningThreshold):
		return model.StatusWarning
	default:
		return model.StatusValid
	}
}

// ClassifyRecord classifies rec, falling back to typeValidityMonths when the
// record carries no validity period of its own.
func ClassifyRecord(now time.Time, rec model.TrainingRecord, typeValidityMonths int) model.Status {
	return Classify(now, rec.ExamDate, recordValidity(rec, typeValidityMonths), rec.Applicable)
}

func recordValidity(rec model.TrainingRecord, typeValidityMonths int) int {
	if rec.ValidityMonths > 0 {
		return rec.ValidityMonths
	}
	return EffectiveValidityMonths(typeValidityMonths)
}

// TreatmentFor maps a determined status to its visual treatment. The second
// return value is false for StatusUndetermined, meaning the caller must leave
// the prior treatment untouched.
func TreatmentFor(s model.Status) (model.Treatment, bool) {
	switch s {
	case model.StatusValid:
		return model.Treatment{Class: "status-valid"}, true
	case model.StatusWarning:
		return model.Treatment{Class: "status-warning"}, true
	case model.StatusExpired:
		return model.Treatment{Class: "status-expired", Pulse: true}, true
	case model.StatusInapplicable:
		return model.Treatment{Class: "status-inapplicable"}, true
	default:
		return model.Treatment{}, false
	}
}
