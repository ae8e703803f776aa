package web

import (
	"time"

	vm "github.com/ericfisherdev/trainingpanel/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/trainingpanel/internal/application"
	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
)

const (
	evaluatedAtLayout = "02.01.2006 15:04"
	dateInputLayout   = "2006-01-02"
	monthLayout       = "01.2006"
)

// toMatrixViewModel converts a domain StatusMatrix to a MatrixViewModel.
// Training type descriptions are rendered from markdown for column tooltips.
func toMatrixViewModel(m model.StatusMatrix) vm.MatrixViewModel {
	columns := make([]vm.ColumnViewModel, 0, len(m.TrainingTypes))
	for _, tt := range m.TrainingTypes {
		columns = append(columns, vm.ColumnViewModel{
			Name:           tt.Name,
			ValidityMonths: application.EffectiveValidityMonths(tt.ValidityMonths),
			TooltipHTML:    RenderMarkdown(tt.Description),
		})
	}

	rows := make([]vm.RowViewModel, 0, len(m.Rows))
	for _, r := range m.Rows {
		cells := make([]vm.CellViewModel, 0, len(r.Cells))
		for _, c := range r.Cells {
			cells = append(cells, toCellViewModel(c))
		}
		rows = append(rows, vm.RowViewModel{
			EmployeeName:   r.Employee.FullName(),
			Position:       r.Employee.Position,
			DepartmentName: r.Department.Name,
			Cells:          cells,
		})
	}

	return vm.MatrixViewModel{
		EvaluatedAt: m.EvaluatedAt.Format(evaluatedAtLayout),
		Columns:     columns,
		Rows:        rows,
	}
}

// toCellViewModel converts a single computed TrainingCell to a CellViewModel.
func toCellViewModel(c model.TrainingCell) vm.CellViewModel {
	return vm.CellViewModel{
		TrainingName:   c.TrainingName,
		ExamDate:       application.FormatDate(c.ExamDate),
		ExamDateInput:  formatInputDate(c.ExamDate),
		NextDueDate:    application.FormatDate(c.NextDueDate),
		ProtocolNumber: c.ProtocolNumber,
		ValidityMonths: c.ValidityMonths,
		Applicable:     c.Applicable,
		HasRecord:      c.HasRecord,
		Status:         string(c.Status),
		CSSClass:       c.Treatment.Class,
		Pulse:          c.Treatment.Pulse,
	}
}

// toSummaryViewModel converts a DashboardSummary to a SummaryViewModel.
// Status counters are listed in the fixed order of model.Statuses.
func toSummaryViewModel(s model.DashboardSummary) vm.SummaryViewModel {
	counts := make([]vm.StatusCountViewModel, 0, len(model.Statuses()))
	for _, st := range model.Statuses() {
		treatment, _ := application.TreatmentFor(st)
		counts = append(counts, vm.StatusCountViewModel{
			Status:   string(st),
			CSSClass: treatment.Class,
			Count:    s.StatusCounts[st],
		})
	}

	return vm.SummaryViewModel{
		EvaluatedAt:        s.EvaluatedAt.Format(evaluatedAtLayout),
		TotalEmployees:     s.TotalEmployees,
		TotalDepartments:   s.TotalDepartments,
		TotalTrainingTypes: s.TotalTrainingTypes,
		StatusCounts:       counts,
		UpcomingDays:       s.UpcomingDays,
		Upcoming:           toDueItemViewModels(s.Upcoming),
		Expired:            toDueItemViewModels(s.Expired),
	}
}

func toDueItemViewModels(items []model.DueItem) []vm.DueItemViewModel {
	result := make([]vm.DueItemViewModel, 0, len(items))
	for _, it := range items {
		due := it.NextDueDate
		result = append(result, vm.DueItemViewModel{
			EmployeeName:   it.EmployeeName,
			DepartmentName: it.DepartmentName,
			TrainingName:   it.TrainingName,
			NextDueDate:    application.FormatDate(&due),
			ProtocolNumber: it.ProtocolNumber,
		})
	}
	return result
}

// toRequestViewModel converts a TrainingRequest to a RequestViewModel.
func toRequestViewModel(r model.TrainingRequest) vm.RequestViewModel {
	items := make([]vm.RequestItemViewModel, 0, len(r.Items))
	for _, it := range r.Items {
		exam, start, due := it.ExamDate, it.WarningStart, it.NextDueDate
		items = append(items, vm.RequestItemViewModel{
			EmployeeName:   it.EmployeeName,
			Position:       it.Position,
			DepartmentName: it.DepartmentName,
			TrainingName:   it.TrainingName,
			ExamDate:       application.FormatDate(&exam),
			WarningStart:   application.FormatDate(&start),
			NextDueDate:    application.FormatDate(&due),
			ProtocolNumber: it.ProtocolNumber,
		})
	}

	firstDay := r.FirstWorkingDay
	return vm.RequestViewModel{
		EvaluatedAt:     r.EvaluatedAt.Format(evaluatedAtLayout),
		Month:           r.Month.Format(monthLayout),
		FirstWorkingDay: application.FormatDate(&firstDay),
		Items:           items,
	}
}

func formatInputDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateInputLayout)
}
