// Package terminal implements the text driving adapter: lipgloss-styled
// renderings of the status matrix and dashboard summary.
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ericfisherdev/trainingpanel/internal/application"
	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
)

const evaluatedAtLayout = "02.01.2006 15:04"

// RenderMatrix writes the status matrix as an aligned table followed by a
// legend.
func RenderMatrix(w io.Writer, m model.StatusMatrix) error {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Training status"))
	sb.WriteString(" ")
	sb.WriteString(dimStyle.Render("as of " + m.EvaluatedAt.Format(evaluatedAtLayout)))
	sb.WriteString("\n\n")

	if len(m.Rows) == 0 {
		sb.WriteString(dimStyle.Render("No employees."))
		sb.WriteString("\n")
		return write(w, sb.String())
	}

	headers := []string{"Employee", "Department"}
	for _, tt := range m.TrainingTypes {
		headers = append(headers, tt.Name)
	}
	t := &table{headers: headers}

	for _, row := range m.Rows {
		cells := []string{row.Employee.FullName(), row.Department.Name}
		for _, c := range row.Cells {
			cells = append(cells, cellText(c))
		}
		t.addRow(cells...)
	}

	sb.WriteString(t.view())
	sb.WriteString("\n")
	sb.WriteString(legend())
	sb.WriteString("\n")

	return write(w, sb.String())
}

// RenderSummary writes dashboard counters and the upcoming and expired lists.
func RenderSummary(w io.Writer, s model.DashboardSummary) error {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Dashboard"))
	sb.WriteString(" ")
	sb.WriteString(dimStyle.Render("as of " + s.EvaluatedAt.Format(evaluatedAtLayout)))
	sb.WriteString("\n")

	totals := fmt.Sprintf("Employees: %d   Departments: %d   Training types: %d",
		s.TotalEmployees, s.TotalDepartments, s.TotalTrainingTypes)
	counts := make([]string, 0, len(model.Statuses()))
	for _, st := range model.Statuses() {
		counts = append(counts, statusStyle(st).Render(string(st)+": "+strconv.Itoa(s.StatusCounts[st])))
	}
	sb.WriteString(summaryBoxStyle.Render(totals + "\n" + strings.Join(counts, "   ")))
	sb.WriteString("\n")

	sb.WriteString(dueSection(fmt.Sprintf("Upcoming exams (next %d days)", s.UpcomingDays), s.Upcoming, warningStyle.Render))
	sb.WriteString("\n")
	sb.WriteString(dueSection("Expired", s.Expired, expiredStyle.Render))

	return write(w, sb.String())
}

func dueSection(title string, items []model.DueItem, dueStyle func(...string) string) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")

	if len(items) == 0 {
		sb.WriteString(dimStyle.Render("None"))
		sb.WriteString("\n")
		return sb.String()
	}

	t := &table{headers: []string{"Employee", "Department", "Training", "Due", "Protocol"}}
	for _, it := range items {
		due := it.NextDueDate
		t.addRow(it.EmployeeName, it.DepartmentName, it.TrainingName,
			dueStyle(application.FormatDate(&due)), it.ProtocolNumber)
	}
	sb.WriteString(t.view())
	return sb.String()
}

// cellText renders one matrix cell: marker plus exam date for tracked
// records, "n/a" for inapplicable ones and a dash where no record exists.
func cellText(c model.TrainingCell) string {
	switch {
	case !c.HasRecord:
		return dimStyle.Render("-")
	case c.Status == model.StatusInapplicable:
		return inapplicableStyle.Render("n/a")
	case !c.Status.IsDetermined():
		return dimStyle.Render("?")
	}
	return statusStyle(c.Status).Render(statusMarker(c.Status) + " " + application.FormatDate(c.ExamDate))
}

func legend() string {
	parts := make([]string, 0, len(model.Statuses())+1)
	for _, st := range model.Statuses() {
		label := string(st)
		if m := statusMarker(st); m != "" {
			label = m + " " + label
		}
		parts = append(parts, statusStyle(st).Render(label))
	}
	parts = append(parts, dimStyle.Render("- no record"))
	return strings.Join(parts, "  ")
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
