package model

import "time"

// RequestItem is one record whose warning window opens in the request month.
type RequestItem struct {
	EmployeeName   string
	Position       string
	DepartmentName string
	TrainingName   string
	ExamDate       time.Time
	NextDueDate    time.Time
	WarningStart   time.Time
	ProtocolNumber string
}

// TrainingRequest lists the employees to enrol for re-examination in a
// calendar month. It is meant to be issued on the month's first working day.
type TrainingRequest struct {
	EvaluatedAt       time.Time
	Month             time.Time // first day of the month
	FirstWorkingDay   time.Time
	IsFirstWorkingDay bool
	Items             []RequestItem
}
