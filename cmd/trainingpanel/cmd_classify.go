package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/trainingpanel/internal/application"
	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
)

func newClassifyCmd(a *app) *cobra.Command {
	var examDate, validity, applicable, now string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a single training record",
		Long: `Evaluates one record and prints its status, next due date and the start
of the warning window.

Example:
  trainingpanel classify --exam-date 2023-01-15 --validity 12 --now 2023-11-01`,
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

			at := a.clockOrSystem().Now()
			if now != "" {
				at, err = parseInstant(now, loc)
				if err != nil {
					return err
				}
			}

			months := application.ParseValidityMonths(validity)
			status := application.Classify(at, exam, months, isApplicable)
			a.logger.Debug("record classified", "status", status, "now", at)

			return printClassification(cmd.OutOrStdout(), status, exam, months)
		},
	}

	f := cmd.Flags()
	f.StringVar(&examDate, "exam-date", "", "exam date (YYYY-MM-DD or DD.MM.YYYY); empty for none")
	f.StringVar(&validity, "validity", "", "validity period in months (default 12)")
	f.StringVar(&applicable, "applicable", "true", "whether expiry is tracked (true|false)")
	f.StringVar(&now, "now", "", "evaluate at this date or RFC 3339 instant instead of the current time")

	return cmd
}

// parseInstant accepts an RFC 3339 timestamp or any exam date format, the
// latter meaning midnight in loc.
func parseInstant(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(raw)); err == nil {
		return t.In(loc), nil
	}
	d, err := application.ParseExamDate(raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: %w", raw, err)
	}
	if d == nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: empty", raw)
	}
	return *d, nil
}

func printClassification(w io.Writer, status model.Status, exam *time.Time, months int) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "status: %s\n", status)
	if exam != nil {
		due, threshold := application.DueDates(*exam, months)
		fmt.Fprintf(&sb, "next due: %s\n", application.FormatDate(&due))
		fmt.Fprintf(&sb, "warning from: %s\n", application.FormatDate(&threshold))
	}
	if t, ok := application.TreatmentFor(status); ok {
		fmt.Fprintf(&sb, "treatment: %s\n", treatmentLabel(t))
	} else {
		sb.WriteString("treatment: unchanged\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func treatmentLabel(t model.Treatment) string {
	if t.Pulse {
		return t.Class + " +pulse"
	}
	return t.Class
}
