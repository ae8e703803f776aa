// Package web implements the HTML driving adapter using templ components.
// It renders status matrix, dashboard and training request fragments to any
// io.Writer; hosting them in a page is left to the caller.
package web

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ericfisherdev/trainingpanel/internal/adapter/driving/web/templates/components"
	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
)

// Renderer is the HTML driving adapter that writes templ fragments.
type Renderer struct {
	logger *slog.Logger
}

// NewRenderer creates a Renderer.
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger}
}

// RenderMatrix writes the status matrix table.
func (r *Renderer) RenderMatrix(ctx context.Context, w io.Writer, m model.StatusMatrix) error {
	component := components.StatusMatrix(toMatrixViewModel(m))
	if err := component.Render(ctx, w); err != nil {
		r.logger.Error("failed to render status matrix", "error", err)
		return fmt.Errorf("render status matrix: %w", err)
	}
	return nil
}

// RenderSummary writes the dashboard summary section.
func (r *Renderer) RenderSummary(ctx context.Context, w io.Writer, s model.DashboardSummary) error {
	component := components.DashboardSummary(toSummaryViewModel(s))
	if err := component.Render(ctx, w); err != nil {
		r.logger.Error("failed to render dashboard summary", "error", err)
		return fmt.Errorf("render dashboard summary: %w", err)
	}
	return nil
}

// RenderRequest writes the monthly training request section.
func (r *Renderer) RenderRequest(ctx context.Context, w io.Writer, req model.TrainingRequest) error {
	component := components.TrainingRequest(toRequestViewModel(req))
	if err := component.Render(ctx, w); err != nil {
		r.logger.Error("failed to render training request", "error", err)
		return fmt.Errorf("render training request: %w", err)
	}
	return nil
}
