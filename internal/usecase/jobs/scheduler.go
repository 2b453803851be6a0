package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tabletop-reserve/internal/pkg/clock"
)

type Runner interface {
	Run(ctx context.Context) RunResult
}

type SchedulerSettings struct {
	Interval time.Duration
	// Ticks are only acted on between ActiveFrom (inclusive) and ActiveTo (exclusive) local hours.
	ActiveFrom int
	ActiveTo   int
}

// Scheduler triggers the runner on a fixed interval. Ticks are handled on a single goroutine
// so runs never overlap; ticks that arrive during a run are dropped by the ticker.
type Scheduler struct {
	runner   Runner
	settings SchedulerSettings
	clock    clock.Clock
	loc      *time.Location
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewScheduler(runner Runner, settings SchedulerSettings, clk clock.Clock, loc *time.Location, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		settings: settings,
		clock:    clk,
		loc:      loc,
		logger:   logger,
	}
}

// Start is a no-op when the scheduler is already running.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	s.logger.Info("Starting upcoming reservation notifier",
		"interval", s.settings.Interval.String(),
		"active_from", s.settings.ActiveFrom,
		"active_to", s.settings.ActiveTo)

	go s.loop(ctx, s.done)
}

// Stop waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.logger.Info("Upcoming reservation notifier stopped")
}

func (s *Scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.settings.Interval)
	defer ticker.Stop()

	// Run initial check immediately
	s.Tick(ctx)

	for {
		select {
		case <-ticker.C:
			s.Tick(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Tick runs the notifier once if the current local hour is inside the active window and
// reports whether it ran.
func (s *Scheduler) Tick(ctx context.Context) bool {
	if !s.Active(s.clock.Now()) {
		s.logger.Debug("Notifier tick outside active hours")
		return false
	}
	s.runner.Run(ctx)
	return true
}

func (s *Scheduler) Active(t time.Time) bool {
	h := t.In(s.loc).Hour()
	return h >= s.settings.ActiveFrom && h < s.settings.ActiveTo
}
