// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// MatrixViewModel holds presentation-ready data for the status matrix table.
type MatrixViewModel struct {
	EvaluatedAt string
	Columns     []ColumnViewModel
	Rows        []RowViewModel
}

// ColumnViewModel holds a training type column header.
type ColumnViewModel struct {
	Name           string
	ValidityMonths int
	TooltipHTML    string // sanitized; empty when the type has no description
}

// RowViewModel holds one employee row of the matrix.
type RowViewModel struct {
	EmployeeName   string
	Position       string
	DepartmentName string
	Cells          []CellViewModel
}

// CellViewModel holds presentation-ready data for a single training cell.
type CellViewModel struct {
	TrainingName   string
	ExamDate       string // DD.MM.YYYY, or empty
	ExamDateInput  string // YYYY-MM-DD for date inputs, or empty
	NextDueDate    string
	ProtocolNumber string
	ValidityMonths int
	Applicable     bool
	HasRecord      bool
	Status         string
	CSSClass       string // empty when no treatment applies
	Pulse          bool
}

// SummaryViewModel holds presentation-ready dashboard counters and lists.
type SummaryViewModel struct {
	EvaluatedAt        string
	TotalEmployees     int
	TotalDepartments   int
	TotalTrainingTypes int
	StatusCounts       []StatusCountViewModel
	UpcomingDays       int
	Upcoming           []DueItemViewModel
	Expired            []DueItemViewModel
}

// StatusCountViewModel is one status counter on the dashboard.
type StatusCountViewModel struct {
	Status   string
	CSSClass string
	Count    int
}

// DueItemViewModel is one upcoming or expired exam row.
type DueItemViewModel struct {
	EmployeeName   string
	DepartmentName string
	TrainingName   string
	NextDueDate    string
	ProtocolNumber string
}

// RequestViewModel holds the monthly training request.
type RequestViewModel struct {
	EvaluatedAt     string
	Month           string // MM.YYYY
	FirstWorkingDay string
	Items           []RequestItemViewModel
}

// RequestItemViewModel is one employee to enrol for re-examination.
type RequestItemViewModel struct {
	EmployeeName   string
	Position       string
	DepartmentName string
	TrainingName   string
	ExamDate       string
	WarningStart   string
	NextDueDate    string
	ProtocolNumber string
}
