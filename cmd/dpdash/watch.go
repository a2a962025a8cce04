package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dataprotect/dpdash/internal/client"
	"github.com/dataprotect/dpdash/internal/config"
	"github.com/dataprotect/dpdash/internal/engine"
	"github.com/dataprotect/dpdash/internal/format"
	"github.com/dataprotect/dpdash/internal/model"
)

func newWatchCmd(v *viper.Viper) *cobra.Command {
	var cycles int
	cmd := &cobra.Command{
		Use:   "watch [api-url]",
		Short: "Poll the dashboard headlessly and print one line per refresh",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cycles < 0 {
				return fmt.Errorf("--cycles must not be negative, got %d", cycles)
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cfg, cfg.LogFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			api, err := client.NewDefaultClient(cfg.ClientConfig(), logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return watch(ctx, api, cfg, cycles, cmd.OutOrStdout(), logger)
		},
	}
	cmd.Flags().IntVar(&cycles, "cycles", 0, "stop after this many successful refreshes (0 runs until interrupted)")
	return cmd
}

// watch runs a Poller until ctx is done or, when limit > 0, until limit
// views have been delivered.
func watch(ctx context.Context, api client.DashboardAPI, cfg *config.Config, limit int, out io.Writer, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	delivered := 0
	var failures int
	sink := engine.Sink{
		OnView: func(view *model.DashboardView) {
			delivered++
			fmt.Fprintln(out, summaryLine(view))
			logger.Info("dashboard refreshed",
				zap.Uint64("cycle", view.Cycle),
				zap.Int("jobs", len(view.Jobs)),
				zap.Int("trend_points", len(view.Trends)),
			)
			if limit > 0 && delivered >= limit {
				cancel()
			}
		},
		OnError: func(err error) {
			if errors.Is(err, context.Canceled) && ctx.Err() != nil {
				return
			}
			failures++
		},
	}

	p := engine.NewPoller(api, cfg.Request(), cfg.Interval, sink, logger)
	if err := p.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	p.Stop()

	logger.Info("watch stopped", zap.Int("refreshes", delivered), zap.Int("failures", failures))
	if delivered == 0 && failures > 0 {
		return errors.New("no refresh succeeded")
	}
	return nil
}

// summaryLine renders one refresh as a single human-readable line.
func summaryLine(view *model.DashboardView) string {
	m := view.Metrics
	stats := engine.Derive(m)
	return fmt.Sprintf("%s  cycle=%d  active=%s  success=%s  storage=%s (%s)  savings=%s  jobs=%d",
		view.FetchedAt.Format("15:04:05"),
		view.Cycle,
		format.FormatNumber(int64(stats.ActiveJobs)),
		format.FormatPercent(stats.SuccessRate),
		format.FormatTB(m.StorageUsedGB),
		format.FormatPercent(stats.StoragePercent),
		format.FormatCurrency(stats.CostSavings),
		len(view.Jobs),
	)
}
