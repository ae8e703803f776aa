package model

import (
	"strings"
	"time"
)

// DefaultValidityMonths is the validity period used when a record or its
// training type does not specify one.
const DefaultValidityMonths = 12

// WarningWindowMonths is the number of calendar months before the next due
// date during which a record is in the warning window.
const WarningWindowMonths = 3

// Department is an organisational unit employees belong to.
type Department struct {
	Code string
	Name string
}

// TrainingType is a training direction with its own validity period.
type TrainingType struct {
	Name           string
	ValidityMonths int
	Description    string // Markdown, shown as a tooltip.
}

// Employee is a person whose training records are tracked.
type Employee struct {
	LastName       string
	FirstName      string
	MiddleName     string
	Position       string
	Email          string
	DepartmentCode string
	Records        []TrainingRecord
}

// FullName returns "Last First Middle", omitting an empty middle name.
func (e Employee) FullName() string {
	parts := []string{e.LastName, e.FirstName}
	if e.MiddleName != "" {
		parts = append(parts, e.MiddleName)
	}
	return strings.Join(parts, " ")
}

// TrainingRecord is one exam result for an employee and training type.
// It is never persisted by this module.
type TrainingRecord struct {
	TrainingName   string
	ExamDate       *time.Time // nil when no exam date has been entered.
	ValidityMonths int        // 0 means "use the training type or default".
	Applicable     bool
	ProtocolNumber string
}

// Roster is the full set of departments, training types and employees
// loaded from a record source.
type Roster struct {
	Departments   []Department
	TrainingTypes []TrainingType
	Employees     []Employee
}

// TrainingType returns the training type with the given name.
func (r Roster) TrainingType(name string) (TrainingType, bool) {
	for _, tt := range r.TrainingTypes {
		if tt.Name == name {
			return tt, true
		}
	}
	return TrainingType{}, false
}

// Department returns the department with the given code.
func (r Roster) Department(code string) (Department, bool) {
	for _, d := range r.Departments {
		if d.Code == code {
			return d, true
		}
	}
	return Department{}, false
}
