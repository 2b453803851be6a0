package components

import (
	"context"
	"log/slog"
	"time"

	"tabletop-reserve/internal/pkg/clock"
	"tabletop-reserve/internal/pkg/config"
	"tabletop-reserve/internal/usecase/jobs"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		NewNotifierSettings,
		jobs.NewUpcomingNotifier,
		NewScheduler,
	),
	fx.Invoke(startScheduler),
)

func NewNotifierSettings(cfg config.Config) jobs.NotifierSettings {
	return jobs.NotifierSettings{
		Lead:   cfg.Notifier.Lead,
		Window: cfg.Notifier.Window,
	}
}

func NewScheduler(cfg config.Config, notifier *jobs.UpcomingNotifier, clk clock.Clock, loc *time.Location, logger *slog.Logger) *jobs.Scheduler {
	return jobs.NewScheduler(notifier, jobs.SchedulerSettings{
		Interval:   cfg.Notifier.Interval,
		ActiveFrom: cfg.Notifier.ActiveFrom,
		ActiveTo:   cfg.Notifier.ActiveTo,
	}, clk, loc, logger)
}

func startScheduler(lc fx.Lifecycle, cfg config.Config, scheduler *jobs.Scheduler, logger *slog.Logger) {
	if !cfg.Notifier.Enabled {
		logger.Info("Upcoming reservation notifier disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// The start context is bound to fx startup, the loop must outlive it.
			scheduler.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}
