package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/trainingpanel/internal/adapter/driving/terminal"
	"github.com/ericfisherdev/trainingpanel/internal/adapter/driving/web"
	"github.com/ericfisherdev/trainingpanel/internal/application"
)

const (
	formatText = "text"
	formatHTML = "html"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatHTML:
		return nil
	default:
		return fmt.Errorf("unknown --format %q (want %s or %s)", format, formatText, formatHTML)
	}
}

func newReportCmd(a *app) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the employee × training status matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			return a.withOutput(cmd, output, func(w io.Writer) error {
				return a.renderMatrix(cmd.Context(), a.reportService(), format, w)
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "output format: text|html")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}

func newSummaryCmd(a *app) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show dashboard counters, upcoming and expired exams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			return a.withOutput(cmd, output, func(w io.Writer) error {
				return a.renderSummary(cmd.Context(), a.reportService(), format, w)
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "output format: text|html")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}

// withOutput calls fn with stdout, or with the named file when output is set.
func (a *app) withOutput(cmd *cobra.Command, output string, fn func(io.Writer) error) error {
	if output == "" {
		return fn(cmd.OutOrStdout())
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	a.logger.Info("report written", "path", output)
	return nil
}

func (a *app) renderMatrix(ctx context.Context, svc *application.ReportService, format string, w io.Writer) error {
	matrix, _, err := svc.Matrix(ctx)
	if err != nil {
		return err
	}
	if format == formatHTML {
		return web.NewRenderer(a.logger).RenderMatrix(ctx, w, matrix)
	}
	return terminal.RenderMatrix(w, matrix)
}

func (a *app) renderSummary(ctx context.Context, svc *application.ReportService, format string, w io.Writer) error {
	summary, err := svc.Summary(ctx)
	if err != nil {
		return err
	}
	if format == formatHTML {
		return web.NewRenderer(a.logger).RenderSummary(ctx, w, summary)
	}
	return terminal.RenderSummary(w, summary)
}
