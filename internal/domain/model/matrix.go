package model

import "time"

// Treatment is the visual treatment applied to a training cell. The zero
// value means no treatment has been applied yet.
type Treatment struct {
	Class string // CSS class, e.g. "status-expired".
	Pulse bool   // Continuous attention animation; set only for expired cells.
}

// TrainingCell is a transient, computed view of the latest record for one
// employee and training type. It is never persisted.
type TrainingCell struct {
	TrainingName     string
	ExamDate         *time.Time
	ValidityMonths   int
	Applicable       bool
	ProtocolNumber   string
	NextDueDate      *time.Time
	WarningThreshold *time.Time
	Status           Status
	Treatment        Treatment
	HasRecord        bool
}

// MatrixRow holds one employee's cells, one per training type column.
type MatrixRow struct {
	Employee   Employee
	Department Department
	Cells      []TrainingCell
}

// StatusMatrix is the employees × training types grid.
type StatusMatrix struct {
	EvaluatedAt   time.Time
	TrainingTypes []TrainingType
	Rows          []MatrixRow
}

// DueItem is a single cell listed on the dashboard as upcoming or expired.
type DueItem struct {
	EmployeeName   string
	DepartmentName string
	TrainingName   string
	NextDueDate    time.Time
	ProtocolNumber string
}

// DashboardSummary aggregates a status matrix into dashboard counters.
type DashboardSummary struct {
	EvaluatedAt        time.Time
	TotalEmployees     int
	TotalDepartments   int
	TotalTrainingTypes int
	StatusCounts       map[Status]int
	UpcomingDays       int
	Upcoming           []DueItem
	Expired            []DueItem
}
