package application

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidExamDate is returned by ParseExamDate for input that is neither
// empty nor a recognised date.
var ErrInvalidExamDate = errors.New("invalid exam date")

// ErrInvalidApplicability is returned by ParseApplicability for values other
// than the two-state choice values.
var ErrInvalidApplicability = errors.New("invalid applicability value")

// Date layouts accepted from inputs: the HTML date input value and the
// day-first display format.
const (
	dateInputLayout   = "2006-01-02"
	dateDisplayLayout = "02.01.2006"
)

// ParseExamDate parses a date entered by the user into midnight in loc.
// Empty input means the exam date is absent and returns (nil, nil).
func ParseExamDate(raw string, loc *time.Location) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range []string{dateInputLayout, dateDisplayLayout} {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("parse %q: %w", raw, ErrInvalidExamDate)
}

// ParseValidityMonths reads a validity period from record metadata. Absent,
// non-numeric or non-positive values yield zero, which the classifier treats
// as the default period.
func ParseValidityMonths(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// ParseApplicability reads the two-state applicability choice. Empty input
// means applicable, matching the default for new records.
func ParseApplicability(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "true", "yes", "1", "on":
		return true, nil
	case "false", "no", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("parse %q: %w", raw, ErrInvalidApplicability)
	}
}

// FormatDate renders t in the day-first display format. A nil date renders
// as an empty string.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateDisplayLayout)
}
