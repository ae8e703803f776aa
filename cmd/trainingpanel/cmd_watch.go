package main

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ericfisherdev/trainingpanel/internal/adapter/driven/fswatch"
	"github.com/ericfisherdev/trainingpanel/internal/domain/port/driven"
)

func newWatchCmd(a *app) *cobra.Command {
	var format string
	var refresh time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the status matrix whenever the records file changes",
		Long: `Renders the matrix, then renders it again each time the records file is
written or replaced. With --refresh the matrix is also re-evaluated on a
fixed interval so statuses move on as the date changes. Stops on SIGINT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			return a.watch(cmd.Context(), cmd.OutOrStdout(), format, refresh)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "output format: text|html")
	cmd.Flags().DurationVar(&refresh, "refresh", time.Hour, "periodic re-evaluation interval; 0 disables")

	return cmd
}

func (a *app) watch(ctx context.Context, w io.Writer, format string, refresh time.Duration) error {
	svc := a.reportService()

	// Render errors are not fatal: the file may be mid-edit.
	render := func(reason string) {
		a.logger.Info("rendering status matrix", "reason", reason, "path", a.cfg.RecordsPath)
		if err := a.renderMatrix(ctx, svc, format, w); err != nil {
			a.logger.Error("render failed", "error", err)
		}
	}

	render("start")

	changes := make(chan struct{}, 1)
	var notifier driven.ChangeNotifier = fswatch.NewWatcher(a.cfg.RecordsPath, a.cfg.WatchDebounce, a.logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return notifier.Watch(gctx, func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		})
	})

	g.Go(func() error {
		var tick <-chan time.Time
		if refresh > 0 {
			ticker := time.NewTicker(refresh)
			defer ticker.Stop()
			tick = ticker.C
		}

		for {
			select {
			case <-gctx.Done():
				return nil
			case <-changes:
				render("records changed")
			case <-tick:
				render("refresh")
			}
		}
	})

	return g.Wait()
}
