package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tabletop-reserve/internal/domain/reservation"
	"tabletop-reserve/internal/pkg/clock"
	"tabletop-reserve/internal/pkg/metrics"
	"tabletop-reserve/internal/usecase/readmodel"
	"tabletop-reserve/internal/usecase/shared"
)

// RunResult summarizes one notifier pass.
type RunResult struct {
	Scanned  int
	Notified int
	Skipped  int
	Failed   int
}

type NotifierSettings struct {
	// Lead shifts the scan window into the future.
	Lead   time.Duration
	Window time.Duration
}

// UpcomingNotifier reminds participants of reservations that are about to start. Each
// reservation is announced at most once: the flag is committed before anything is sent.
type UpcomingNotifier struct {
	reads      shared.ReservationReadStore
	uow        shared.UnitOfWork
	dispatcher *shared.Dispatcher
	clock      clock.Clock
	loc        *time.Location
	settings   NotifierSettings
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewUpcomingNotifier(
	reads shared.ReservationReadStore,
	uow shared.UnitOfWork,
	dispatcher *shared.Dispatcher,
	clk clock.Clock,
	loc *time.Location,
	settings NotifierSettings,
	m *metrics.Metrics,
	logger *slog.Logger,
) *UpcomingNotifier {
	return &UpcomingNotifier{
		reads:      reads,
		uow:        uow,
		dispatcher: dispatcher,
		clock:      clk,
		loc:        loc,
		settings:   settings,
		metrics:    m,
		logger:     logger,
	}
}

func (n *UpcomingNotifier) Run(ctx context.Context) RunResult {
	var result RunResult
	n.metrics.NotifierRuns.Inc()

	from := n.clock.Now().Add(n.settings.Lead)
	to := from.Add(n.settings.Window)

	upcoming, err := n.reads.FindStartingBetween(ctx, from, to, readmodel.RelAll)
	if err != nil {
		n.metrics.NotifierFailures.Inc()
		n.logger.Error("Failed to scan upcoming reservations", "error", err, "from", from, "to", to)
		result.Failed++
		return result
	}
	result.Scanned = len(upcoming)

	for _, rm := range upcoming {
		if rm.UpcomingNotified {
			result.Skipped++
			continue
		}

		claimed, err := n.claim(ctx, rm.ID)
		if err != nil {
			n.metrics.NotifierFailures.Inc()
			n.logger.Error("Failed to flag upcoming reservation", "error", err, "reservation_id", rm.ID)
			result.Failed++
			continue
		}
		if !claimed {
			result.Skipped++
			continue
		}

		n.notify(ctx, rm)
		n.metrics.NotifierNotified.Inc()
		result.Notified++
	}

	if result.Scanned > 0 {
		n.logger.Info("Upcoming reservation scan finished",
			"scanned", result.Scanned,
			"notified", result.Notified,
			"skipped", result.Skipped,
			"failed", result.Failed)
	}
	return result
}

// claim flips the flag and reports whether this run owns the reminder.
func (n *UpcomingNotifier) claim(ctx context.Context, id int64) (bool, error) {
	var claimed bool
	err := n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		claimed, err = tx.Reservations().MarkUpcomingNotified(ctx, id)
		return err
	})
	return claimed, err
}

func (n *UpcomingNotifier) notify(ctx context.Context, rm *readmodel.ReservationRM) {
	game := rm.GameName()
	if game == "" {
		game = "Your reservation"
	}
	body := fmt.Sprintf("%s starts on %s", game, shared.LocalDateTime(rm.HourStart, n.loc))
	if shop := rm.ShopName(); shop != "" {
		body += " at " + shop
	}

	n.dispatcher.Multicast(ctx, metrics.KindUpcoming,
		reservation.FanOutTokens(rm.Participants, ""),
		"Upcoming reservation", body,
		"reservation_id", rm.ID)
}
