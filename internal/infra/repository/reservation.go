package repository

import (
	"context"

	"tabletop-reserve/internal/domain/reservation"
	"tabletop-reserve/internal/infra"
	"tabletop-reserve/internal/infra/query"
	"tabletop-reserve/internal/infra/repository/converter"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db query.DBTX, arg query.CreateReservationParams) (int64, error)
	UpdateReservation(ctx context.Context, db query.DBTX, arg query.UpdateReservationParams) (int64, error)
	DeleteReservation(ctx context.Context, db query.DBTX, id int64) (int64, error)
	GetReservationForUpdate(ctx context.Context, db query.DBTX, id int64) (query.Reservation, error)
	MarkUpcomingNotified(ctx context.Context, db query.DBTX, id int64) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      query.DBTX
}

func NewReservationRepository(queries *query.Queries, db query.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	id, err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	res.SetID(id)
	return id, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if affected == 0 {
		return infra.NotFound("reservation not found")
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := r.queries.DeleteReservation(ctx, r.db, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reservation", err)
	}
	return affected, nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	res, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) MarkUpcomingNotified(ctx context.Context, id int64) (bool, error) {
	affected, err := r.queries.MarkUpcomingNotified(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to flag upcoming reservation", err)
	}
	return affected == 1, nil
}
