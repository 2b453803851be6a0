package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tabletop-reserve/internal/domain/reservation"
	"tabletop-reserve/internal/infra"
	"tabletop-reserve/internal/pkg/clock"
	"tabletop-reserve/internal/pkg/errs"
	"tabletop-reserve/internal/pkg/metrics"
	"tabletop-reserve/internal/usecase/readmodel"
	"tabletop-reserve/internal/usecase/shared"
)

type ParticipationCommands interface {
	AddUserToReserve(ctx context.Context, userID string, reserveID int64, confirmed bool) (*readmodel.ParticipationRM, error)
	ConfirmReserveForUser(ctx context.Context, userID string, reserveID int64) (*readmodel.ParticipationRM, error)
	DeleteReserveFromUser(ctx context.Context, userID string, reserveID int64) error
}

type participationCommandsImpl struct {
	uow        shared.UnitOfWork
	dispatcher *shared.Dispatcher
	clock      clock.Clock
	loc        *time.Location
	logger     *slog.Logger
}

func NewParticipationCommands(
	uow shared.UnitOfWork,
	dispatcher *shared.Dispatcher,
	clk clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
) ParticipationCommands {
	return &participationCommandsImpl{
		uow:        uow,
		dispatcher: dispatcher,
		clock:      clk,
		loc:        loc,
		logger:     logger,
	}
}

func (c *participationCommandsImpl) AddUserToReserve(ctx context.Context, userID string, reserveID int64, confirmed bool) (*readmodel.ParticipationRM, error) {
	var (
		user     *readmodel.UserRM
		res      *reservation.Reservation
		existing []reservation.Participant
		p        *reservation.Participation
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if user, err = tx.Users().FindByID(ctx, userID); err != nil {
			return shared.NotFoundOr(err, "user %s not found", userID)
		}
		if res, err = tx.Reservations().FindByIDForUpdate(ctx, reserveID); err != nil {
			return shared.NotFoundOr(err, "reserve %d not found", reserveID)
		}

		_, err = tx.Participations().Find(ctx, userID, reserveID)
		switch {
		case err == nil:
			return errs.Conflict("user %s already joined reserve %d", userID, reserveID)
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		if existing, err = tx.Participations().ListParticipants(ctx, reserveID); err != nil {
			return err
		}

		p = reservation.NewParticipation(userID, reserveID, confirmed, c.clock.Now())
		id, err := tx.Participations().Create(ctx, p)
		if err != nil {
			return shared.ConflictOr(err, "user %s already joined reserve %d", userID, reserveID)
		}
		p.SetID(id)
		return nil
	})
	if err != nil {
		return nil, shared.Classify(c.logger, "add user to reserve", err)
	}

	c.logger.Info("User joined reservation", "user_id", userID, "reservation_id", reserveID, "confirmed", confirmed)

	// The joining user is not in the existing set, so only earlier participants hear about it.
	c.dispatcher.Multicast(ctx, metrics.KindPlayerJoin,
		reservation.FanOutTokens(existing, ""),
		"New player",
		fmt.Sprintf("%s joined your reservation on %s", user.Name, shared.LocalDateTime(res.TimeSlot().Start(), c.loc)),
		"reservation_id", reserveID, "user_id", userID)

	return toParticipationRM(p), nil
}

func (c *participationCommandsImpl) ConfirmReserveForUser(ctx context.Context, userID string, reserveID int64) (*readmodel.ParticipationRM, error) {
	var p *reservation.Participation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if p, err = tx.Participations().Find(ctx, userID, reserveID); err != nil {
			return shared.PreconditionOr(err, "user %s has not joined reserve %d", userID, reserveID)
		}
		p.Confirm()
		return tx.Participations().UpdateConfirmed(ctx, p)
	})
	if err != nil {
		return nil, shared.Classify(c.logger, "confirm reserve for user", err)
	}

	c.logger.Info("Participation confirmed", "user_id", userID, "reservation_id", reserveID)
	return toParticipationRM(p), nil
}

func (c *participationCommandsImpl) DeleteReserveFromUser(ctx context.Context, userID string, reserveID int64) error {
	var (
		res          *reservation.Reservation
		participants []reservation.Participant
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Participations().Find(ctx, userID, reserveID)
		if err != nil {
			return shared.PreconditionOr(err, "user %s has not joined reserve %d", userID, reserveID)
		}
		if res, err = tx.Reservations().FindByIDForUpdate(ctx, reserveID); err != nil {
			return shared.NotFoundOr(err, "reserve %d not found", reserveID)
		}
		if participants, err = tx.Participations().ListParticipants(ctx, reserveID); err != nil {
			return err
		}
		return tx.Participations().Delete(ctx, p.ID())
	})
	if err != nil {
		return shared.Classify(c.logger, "delete reserve from user", err)
	}

	c.logger.Info("User left reservation", "user_id", userID, "reservation_id", reserveID)

	c.dispatcher.Multicast(ctx, metrics.KindPlayerLeave,
		reservation.FanOutTokens(participants, userID),
		"Player left",
		fmt.Sprintf("%s left your reservation on %s", participantName(participants, userID), shared.LocalDateTime(res.TimeSlot().Start(), c.loc)),
		"reservation_id", reserveID, "user_id", userID)
	return nil
}

func participantName(participants []reservation.Participant, userID string) string {
	for _, p := range participants {
		if p.UserID == userID && p.Name != "" {
			return p.Name
		}
	}
	return "A player"
}

func toParticipationRM(p *reservation.Participation) *readmodel.ParticipationRM {
	return &readmodel.ParticipationRM{
		ID:            p.ID(),
		UserID:        p.UserID(),
		ReservationID: p.ReservationID(),
		Confirmed:     p.Confirmed(),
		CreatedAt:     p.CreatedAt(),
	}
}
