package terminal

import (
	"io"
	"strings"

	"github.com/ericfisherdev/trainingpanel/internal/application"
	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
)

const monthLayout = "01.2006"

// RenderRequest writes the monthly training request: every record whose
// warning window opens in the request month.
func RenderRequest(w io.Writer, r model.TrainingRequest) error {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Training request " + r.Month.Format(monthLayout)))
	sb.WriteString(" ")
	firstDay := r.FirstWorkingDay
	sb.WriteString(dimStyle.Render("first working day " + application.FormatDate(&firstDay)))
	sb.WriteString("\n\n")

	if len(r.Items) == 0 {
		sb.WriteString(dimStyle.Render("No records enter the warning window this month."))
		sb.WriteString("\n")
		return write(w, sb.String())
	}

	t := &table{headers: []string{"Employee", "Position", "Department", "Training", "Last exam", "Warning from", "Due", "Protocol"}}
	for _, it := range r.Items {
		exam, start, due := it.ExamDate, it.WarningStart, it.NextDueDate
		t.addRow(
			it.EmployeeName,
			it.Position,
			it.DepartmentName,
			it.TrainingName,
			application.FormatDate(&exam),
			warningStyle.Render(application.FormatDate(&start)),
			application.FormatDate(&due),
			it.ProtocolNumber,
		)
	}
	sb.WriteString(t.view())

	return write(w, sb.String())
}
