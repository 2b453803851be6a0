package queries

import (
	"context"
	"log/slog"

	"tabletop-reserve/internal/pkg/clock"
	"tabletop-reserve/internal/pkg/errs"
	"tabletop-reserve/internal/usecase/readmodel"
	"tabletop-reserve/internal/usecase/shared"
)

type ParticipationQueries interface {
	FindReserveByID(ctx context.Context, reserveID int64) (*readmodel.ReservationRM, error)
	FindReserveFromUser(ctx context.Context, userID string, reserveID int64) (*readmodel.ParticipationRM, error)
	FindReservesFromUser(ctx context.Context, userID string) ([]*readmodel.ReservationRM, error)
}

type participationQueriesImpl struct {
	reservations shared.ReservationReadStore
	catalog      shared.CatalogReadStore
	clock        clock.Clock
	logger       *slog.Logger
}

func NewParticipationQueries(
	reservations shared.ReservationReadStore,
	catalog shared.CatalogReadStore,
	clk clock.Clock,
	logger *slog.Logger,
) ParticipationQueries {
	return &participationQueriesImpl{
		reservations: reservations,
		catalog:      catalog,
		clock:        clk,
		logger:       logger,
	}
}

func (q *participationQueriesImpl) FindReserveByID(ctx context.Context, reserveID int64) (*readmodel.ReservationRM, error) {
	rm, err := q.reservations.FindByID(ctx, reserveID, readmodel.RelAll)
	if err != nil {
		return nil, shared.Classify(q.logger, "find reserve by id", shared.NotFoundOr(err, "reserve %d not found", reserveID))
	}
	return rm, nil
}

func (q *participationQueriesImpl) FindReserveFromUser(ctx context.Context, userID string, reserveID int64) (*readmodel.ParticipationRM, error) {
	p, err := q.catalog.ParticipationByKey(ctx, userID, reserveID)
	if err != nil {
		return nil, shared.Classify(q.logger, "find reserve from user",
			shared.PreconditionOr(err, "user %s has not joined reserve %d", userID, reserveID))
	}
	return p, nil
}

// FindReservesFromUser lists the user's reservations that have not ended yet, soonest first.
func (q *participationQueriesImpl) FindReservesFromUser(ctx context.Context, userID string) ([]*readmodel.ReservationRM, error) {
	if _, err := q.catalog.UserByID(ctx, userID); err != nil {
		return nil, shared.Classify(q.logger, "find reserves from user", shared.NotFoundOr(err, "user %s not found", userID))
	}

	list, err := q.reservations.FindByUserEndingAfter(ctx, userID, q.clock.Now())
	if err != nil {
		return nil, shared.Classify(q.logger, "find reserves from user", err)
	}
	if len(list) == 0 {
		return nil, errs.NoContent("user %s has no upcoming reservations", userID)
	}
	return list, nil
}
