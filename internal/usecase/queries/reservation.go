package queries

import (
	"context"
	"log/slog"
	"time"

	"tabletop-reserve/internal/domain/reservation"
	"tabletop-reserve/internal/pkg/clock"
	"tabletop-reserve/internal/pkg/errs"
	"tabletop-reserve/internal/usecase/readmodel"
	"tabletop-reserve/internal/usecase/shared"
)

const lastPlayersLimit = 10

type ReservationQueries interface {
	GetAll(ctx context.Context) ([]*readmodel.ReservationRM, error)
	Get(ctx context.Context, id int64) (*readmodel.ReservationRM, error)
	GetAllByDate(ctx context.Context, date time.Time, tableID int64) ([]*readmodel.ReservationRM, error)
	FindAllUniqueShopEvents(ctx context.Context, shopID int64) ([]*readmodel.ReservationRM, error)
	GetLastTenPlayers(ctx context.Context, userID string) ([]readmodel.UserRM, error)
}

type reservationQueriesImpl struct {
	reservations shared.ReservationReadStore
	catalog      shared.CatalogReadStore
	clock        clock.Clock
	loc          *time.Location
	logger       *slog.Logger
}

func NewReservationQueries(
	reservations shared.ReservationReadStore,
	catalog shared.CatalogReadStore,
	clk clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
) ReservationQueries {
	return &reservationQueriesImpl{
		reservations: reservations,
		catalog:      catalog,
		clock:        clk,
		loc:          loc,
		logger:       logger,
	}
}

func (q *reservationQueriesImpl) GetAll(ctx context.Context) ([]*readmodel.ReservationRM, error) {
	list, err := q.reservations.FindAll(ctx)
	if err != nil {
		return nil, shared.Classify(q.logger, "get all reservations", err)
	}
	if len(list) == 0 {
		return nil, errs.NoContent("no reservations")
	}
	return list, nil
}

func (q *reservationQueriesImpl) Get(ctx context.Context, id int64) (*readmodel.ReservationRM, error) {
	rm, err := q.reservations.FindByID(ctx, id, readmodel.RelCatalog)
	if err != nil {
		return nil, shared.Classify(q.logger, "get reservation", shared.NotFoundOr(err, "reserve %d not found", id))
	}
	return rm, nil
}

// GetAllByDate lists the table's reservations starting on the local calendar day of date.
func (q *reservationQueriesImpl) GetAllByDate(ctx context.Context, date time.Time, tableID int64) ([]*readmodel.ReservationRM, error) {
	from, to := reservation.Day(date, q.loc)
	list, err := q.reservations.FindByTableStartingBetween(ctx, tableID, from, to)
	if err != nil {
		return nil, shared.Classify(q.logger, "get reservations by date", err)
	}
	if len(list) == 0 {
		return nil, errs.NoContent("no reservations for table %d on %s", tableID, shared.LocalDate(from, q.loc))
	}
	return list, nil
}

// FindAllUniqueShopEvents returns the earliest upcoming occurrence of every event at the shop.
func (q *reservationQueriesImpl) FindAllUniqueShopEvents(ctx context.Context, shopID int64) ([]*readmodel.ReservationRM, error) {
	if _, err := q.catalog.ShopByID(ctx, shopID); err != nil {
		return nil, shared.Classify(q.logger, "find unique shop events", shared.NotFoundOr(err, "Shop not found"))
	}

	list, err := q.reservations.FindShopEventsStartingAfter(ctx, shopID, q.clock.Now())
	if err != nil {
		return nil, shared.Classify(q.logger, "find unique shop events", err)
	}

	events := reservation.FirstPerEvent(list, func(rm *readmodel.ReservationRM) *string { return rm.EventID })
	if len(events) == 0 {
		return nil, errs.NoContent("no upcoming events for shop %d", shopID)
	}
	return events, nil
}

// GetLastTenPlayers lists the distinct users seen in the ten most recent participations of
// others in reservations shared with userID, most recent first.
func (q *reservationQueriesImpl) GetLastTenPlayers(ctx context.Context, userID string) ([]readmodel.UserRM, error) {
	rows, err := q.reservations.FindRecentCoPlayers(ctx, userID, lastPlayersLimit)
	if err != nil {
		return nil, shared.Classify(q.logger, "get last ten players", err)
	}

	seen := make(map[string]struct{}, len(rows))
	players := make([]readmodel.UserRM, 0, len(rows))
	for _, u := range rows {
		if _, ok := seen[u.ID]; ok {
			continue
		}
		seen[u.ID] = struct{}{}
		players = append(players, u)
	}
	return players, nil
}
