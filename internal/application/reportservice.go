// Package application contains use-case orchestration services.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
	"github.com/ericfisherdev/trainingpanel/internal/domain/port/driven"
)

// ReportService loads training records from a RecordSource and evaluates them
// into a status matrix and dashboard summary. Every call reads the records and
// the clock afresh; nothing is cached between calls.
type ReportService struct {
	source       driven.RecordSource
	clock        driven.Clock
	loc          *time.Location
	upcomingDays int
	logger       *slog.Logger
}

// NewReportService creates a ReportService with all required dependencies.
func NewReportService(
	source driven.RecordSource,
	clock driven.Clock,
	loc *time.Location,
	upcomingDays int,
	logger *slog.Logger,
) *ReportService {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{
		source:       source,
		clock:        clock,
		loc:          loc,
		upcomingDays: upcomingDays,
		logger:       logger,
	}
}

// Matrix loads the roster and evaluates every employee × training type cell.
func (s *ReportService) Matrix(ctx context.Context) (model.StatusMatrix, model.Roster, error) {
	roster, err := s.source.Load(ctx)
	if err != nil {
		return model.StatusMatrix{}, model.Roster{}, fmt.Errorf("load records: %w", err)
	}

	matrix := BuildMatrix(roster, s.clock, s.loc)
	s.logger.Debug("status matrix built",
		"employees", len(matrix.Rows),
		"training_types", len(matrix.TrainingTypes),
		"evaluated_at", matrix.EvaluatedAt,
	)

	return matrix, roster, nil
}

// Summary loads the roster and aggregates it into dashboard counters.
func (s *ReportService) Summary(ctx context.Context) (model.DashboardSummary, error) {
	matrix, roster, err := s.Matrix(ctx)
	if err != nil {
		return model.DashboardSummary{}, err
	}

	summary := Summarize(matrix, roster, s.upcomingDays)
	s.logger.Debug("dashboard summary computed",
		"upcoming", len(summary.Upcoming),
		"expired", len(summary.Expired),
	)

	return summary, nil
}

// Request loads the roster and lists the records whose warning window opens
// in the current month.
func (s *ReportService) Request(ctx context.Context) (model.TrainingRequest, error) {
	roster, err := s.source.Load(ctx)
	if err != nil {
		return model.TrainingRequest{}, fmt.Errorf("load records: %w", err)
	}

	req := BuildTrainingRequest(roster, s.clock.Now().In(s.loc))
	s.logger.Debug("training request built",
		"month", req.Month.Format("2006-01"),
		"items", len(req.Items),
		"first_working_day", req.IsFirstWorkingDay,
	)

	return req, nil
}
