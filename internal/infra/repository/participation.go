package repository

import (
	"context"

	"tabletop-reserve/internal/domain/reservation"
	"tabletop-reserve/internal/infra"
	"tabletop-reserve/internal/infra/query"
	"tabletop-reserve/internal/infra/repository/converter"
	"tabletop-reserve/internal/pkg/pgconv"
)

type ParticipationWriteQueries interface {
	CreateUserReservation(ctx context.Context, db query.DBTX, arg query.CreateUserReservationParams) (int64, error)
	GetUserReservation(ctx context.Context, db query.DBTX, userID string, reservationID int64) (query.UserReservation, error)
	UpdateUserReservationConfirmed(ctx context.Context, db query.DBTX, id int64, confirmed bool) (int64, error)
	DeleteUserReservation(ctx context.Context, db query.DBTX, id int64) (int64, error)
	ListParticipants(ctx context.Context, db query.DBTX, reservationIDs []int64) ([]query.ParticipantRow, error)
}

type ParticipationRepository struct {
	queries ParticipationWriteQueries
	db      query.DBTX
}

func NewParticipationRepository(queries *query.Queries, db query.DBTX) *ParticipationRepository {
	return &ParticipationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ParticipationRepository) Create(ctx context.Context, p *reservation.Participation) (int64, error) {
	id, err := r.queries.CreateUserReservation(ctx, r.db, query.CreateUserReservationParams{
		UserID:        p.UserID(),
		ReservationID: p.ReservationID(),
		Confirmed:     p.Confirmed(),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create participation", err)
	}
	return id, nil
}

func (r *ParticipationRepository) Find(ctx context.Context, userID string, reservationID int64) (*reservation.Participation, error) {
	row, err := r.queries.GetUserReservation(ctx, r.db, userID, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("participation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find participation", err)
	}
	return converter.ParticipationToDomain(row), nil
}

func (r *ParticipationRepository) UpdateConfirmed(ctx context.Context, p *reservation.Participation) error {
	affected, err := r.queries.UpdateUserReservationConfirmed(ctx, r.db, p.ID(), p.Confirmed())
	if err != nil {
		return infra.WrapRepoErr("failed to update participation", err)
	}
	if affected == 0 {
		return infra.NotFound("participation not found")
	}
	return nil
}

func (r *ParticipationRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteUserReservation(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete participation", err)
	}
	if affected == 0 {
		return infra.NotFound("participation not found")
	}
	return nil
}

func (r *ParticipationRepository) ListParticipants(ctx context.Context, reservationID int64) ([]reservation.Participant, error) {
	rows, err := r.queries.ListParticipants(ctx, r.db, []int64{reservationID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list participants", err)
	}

	result := make([]reservation.Participant, len(rows))
	for i, row := range rows {
		result[i] = converter.ParticipantToDomain(row)
	}
	return result, nil
}
