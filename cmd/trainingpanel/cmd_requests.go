package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/trainingpanel/internal/adapter/driving/terminal"
	"github.com/ericfisherdev/trainingpanel/internal/adapter/driving/web"
)

func newRequestsCmd(a *app) *cobra.Command {
	var (
		format, output      string
		firstWorkingDayOnly bool
	)

	cmd := &cobra.Command{
		Use:   "requests",
		Short: "List records whose warning window opens this month",
		Long: `requests lists every applicable record whose warning threshold falls in the
current calendar month: the employees to enrol for re-examination. The list is
meant to be issued on the month's first working day; with
--first-working-day-only nothing is written on any other day, which suits a
daily scheduled run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			ctx := cmd.Context()
			req, err := a.reportService().Request(ctx)
			if err != nil {
				return err
			}
			if firstWorkingDayOnly && !req.IsFirstWorkingDay {
				a.logger.Info("not the first working day of the month, skipping request",
					"first_working_day", req.FirstWorkingDay.Format("2006-01-02"),
				)
				return nil
			}

			return a.withOutput(cmd, output, func(w io.Writer) error {
				if format == formatHTML {
					return web.NewRenderer(a.logger).RenderRequest(ctx, w, req)
				}
				return terminal.RenderRequest(w, req)
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "output format: text|html")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().BoolVar(&firstWorkingDayOnly, "first-working-day-only", false, "write nothing unless today is the first working day of the month")

	return cmd
}
