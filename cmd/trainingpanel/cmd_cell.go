package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/trainingpanel/internal/application"
	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
)

func newCellCmd(a *app) *cobra.Command {
	var training, examDate, validity, applicable string

	cmd := &cobra.Command{
		Use:   "cell",
		Short: "Drive one training cell from input events read on stdin",
		Long: `Creates a training cell and applies input events read line by line from
stdin, printing every treatment change:

  date <value>         exam date input changed (empty value clears it)
  applicable <value>   applicability choice changed (true|false)
  refresh              re-evaluate at the current time
  status               print the current status
  submit               accept the record and clear the unsaved flag

Unsaved changes left at end of input are reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loc := a.cfg.Location

			exam, err := application.ParseExamDate(examDate, loc)
			if err != nil {
				return err
			}
			isApplicable, err := application.ParseApplicability(applicable)
			if err != nil {
				return err
			}

			rec := model.TrainingRecord{
				TrainingName: training,
				ExamDate:     exam,
				Applicable:   isApplicable,
			}
			validityMonths := application.ParseValidityMonths(validity)

			out := cmd.OutOrStdout()
			cell := application.NewCellController(rec, validityMonths, a.clockOrSystem(), loc)
			cell.OnTreatmentChange(func(status model.Status, t model.Treatment) {
				fmt.Fprintf(out, "treatment: %s (%s)\n", treatmentLabel(t), status)
			})

			form := application.NewRecordForm()
			form.Add(cell)

			fmt.Fprintf(out, "status: %s\n", cell.Status())
			return a.runCellEvents(cmd.InOrStdin(), out, cell, form)
		},
	}

	f := cmd.Flags()
	f.StringVar(&training, "training", "", "training type name")
	f.StringVar(&examDate, "exam-date", "", "initial exam date")
	f.StringVar(&validity, "validity", "", "validity period in months (default 12)")
	f.StringVar(&applicable, "applicable", "true", "initial applicability (true|false)")

	return cmd
}

func (a *app) runCellEvents(in io.Reader, out io.Writer, cell *application.CellController, form *application.RecordForm) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		event, value, _ := strings.Cut(line, " ")
		value = strings.TrimSpace(value)

		var err error
		switch event {
		case "date":
			err = cell.OnExamDateChange(value)
		case "applicable":
			err = cell.OnApplicabilityChange(value)
		case "refresh":
			form.RefreshAll()
		case "status":
			fmt.Fprintf(out, "status: %s\n", cell.Status())
		case "submit":
			for _, rec := range form.Submit() {
				fmt.Fprintf(out, "submitted: exam %s, applicable %t\n", displayDate(rec), rec.Applicable)
			}
		default:
			err = fmt.Errorf("unknown event %q", event)
		}

		if err != nil {
			a.logger.Warn("input rejected", "line", line, "error", err)
			fmt.Fprintf(out, "rejected: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read events: %w", err)
	}

	if form.HasUnsavedChanges() {
		a.logger.Warn("unsaved changes discarded")
		fmt.Fprintln(out, "unsaved changes")
	}
	return nil
}

func displayDate(rec model.TrainingRecord) string {
	if rec.ExamDate == nil {
		return "none"
	}
	return application.FormatDate(rec.ExamDate)
}
