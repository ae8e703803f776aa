package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/trainingpanel/internal/adapter/driven/clock"
	"github.com/ericfisherdev/trainingpanel/internal/adapter/driven/yamlfile"
	"github.com/ericfisherdev/trainingpanel/internal/application"
	"github.com/ericfisherdev/trainingpanel/internal/config"
	"github.com/ericfisherdev/trainingpanel/internal/domain/port/driven"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd(newApp(os.Stdin, os.Stdout, os.Stderr)).ExecuteContext(ctx)
}

// app is the composition root shared by all subcommands. Config and logger
// are populated by the root command's PersistentPreRunE.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// clock overrides the system clock when set.
	clock driven.Clock

	recordsPath  string
	timezone     string
	logLevel     string
	upcomingDays int

	cfg    *config.Config
	logger *slog.Logger
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{stdin: stdin, stdout: stdout, stderr: stderr}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "trainingpanel",
		Short: "Employee training status classifier and reports",
		Long: `trainingpanel classifies employee training records as valid, warning,
expired or inapplicable, based on the exam date, the validity period of the
training type and the current date.

Records are read from a YAML file (TRAININGPANEL_RECORDS_PATH or --records).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.recordsPath, "records", "", "records file (overrides TRAININGPANEL_RECORDS_PATH)")
	pf.StringVar(&a.timezone, "timezone", "", "IANA location for dates (overrides TRAININGPANEL_TIMEZONE)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (overrides TRAININGPANEL_LOG_LEVEL)")
	pf.IntVar(&a.upcomingDays, "upcoming-days", 0, "upcoming exams horizon in days (overrides TRAININGPANEL_UPCOMING_DAYS)")

	root.AddCommand(
		newClassifyCmd(a),
		newReportCmd(a),
		newSummaryCmd(a),
		newWatchCmd(a),
		newCellCmd(a),
		newRequestsCmd(a),
	)

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("records") {
		cfg.RecordsPath = a.recordsPath
	}
	if flags.Changed("timezone") {
		loc, err := time.LoadLocation(a.timezone)
		if err != nil {
			return fmt.Errorf("invalid --timezone %q: %w", a.timezone, err)
		}
		cfg.Location = loc
	}
	if flags.Changed("log-level") {
		if err := cfg.LogLevel.UnmarshalText([]byte(a.logLevel)); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
		}
	}
	if flags.Changed("upcoming-days") {
		if a.upcomingDays < 0 {
			return fmt.Errorf("--upcoming-days must not be negative, got %d", a.upcomingDays)
		}
		cfg.UpcomingDays = a.upcomingDays
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	a.logger.Debug("config loaded",
		"records_path", cfg.RecordsPath,
		"timezone", cfg.Location.String(),
		"upcoming_days", cfg.UpcomingDays,
	)

	return nil
}

func (a *app) clockOrSystem() driven.Clock {
	if a.clock != nil {
		return a.clock
	}
	return clock.NewSystem(a.cfg.Location)
}

func (a *app) reportService() *application.ReportService {
	source := yamlfile.NewSource(a.cfg.RecordsPath, a.cfg.Location)
	return application.NewReportService(source, a.clockOrSystem(), a.cfg.Location, a.cfg.UpcomingDays, a.logger)
}
