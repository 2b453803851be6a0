package readstore

import (
	"context"
	"math"
	"time"

	"tabletop-reserve/internal/infra"
	"tabletop-reserve/internal/infra/query"
	"tabletop-reserve/internal/infra/repository/converter"
	"tabletop-reserve/internal/pkg/pgconv"
	"tabletop-reserve/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationDetail(ctx context.Context, db query.DBTX, id int64) (query.ReservationDetailRow, error)
	ListReservationDetails(ctx context.Context, db query.DBTX) ([]query.ReservationDetailRow, error)
	ListReservationDetailsByTableBetween(ctx context.Context, db query.DBTX, tableID int64, from, to pgtype.Timestamptz) ([]query.ReservationDetailRow, error)
	ListShopEventsStartingAfter(ctx context.Context, db query.DBTX, shopID int64, after pgtype.Timestamptz) ([]query.ReservationDetailRow, error)
	ListReservationDetailsStartingBetween(ctx context.Context, db query.DBTX, from, to pgtype.Timestamptz) ([]query.ReservationDetailRow, error)
	ListReservationDetailsByUserEndingAfter(ctx context.Context, db query.DBTX, userID string, after pgtype.Timestamptz) ([]query.ReservationDetailRow, error)
	ListRecentCoPlayers(ctx context.Context, db query.DBTX, userID string, limit int32) ([]query.User, error)
	ListParticipants(ctx context.Context, db query.DBTX, reservationIDs []int64) ([]query.ParticipantRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      query.DBTX
}

func NewReservationReadStore(queries *query.Queries, db query.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64, rels readmodel.Relations) (*readmodel.ReservationRM, error) {
	row, err := r.queries.GetReservationDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return r.single(ctx, []query.ReservationDetailRow{row}, rels)
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*readmodel.ReservationRM, error) {
	rows, err := r.queries.ListReservationDetails(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return r.toReadModels(ctx, rows, readmodel.RelCatalog)
}

func (r *ReservationReadStore) FindByTableStartingBetween(ctx context.Context, tableID int64, from, to time.Time) ([]*readmodel.ReservationRM, error) {
	rows, err := r.queries.ListReservationDetailsByTableBetween(ctx, r.db, tableID, pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by table", err)
	}
	return r.toReadModels(ctx, rows, readmodel.RelCatalog)
}

func (r *ReservationReadStore) FindShopEventsStartingAfter(ctx context.Context, shopID int64, after time.Time) ([]*readmodel.ReservationRM, error) {
	rows, err := r.queries.ListShopEventsStartingAfter(ctx, r.db, shopID, pgconv.TimeToPgtype(after))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shop events", err)
	}
	return r.toReadModels(ctx, rows, readmodel.RelCatalog)
}

func (r *ReservationReadStore) FindStartingBetween(ctx context.Context, from, to time.Time, rels readmodel.Relations) ([]*readmodel.ReservationRM, error) {
	rows, err := r.queries.ListReservationDetailsStartingBetween(ctx, r.db, pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations in window", err)
	}
	return r.toReadModels(ctx, rows, rels)
}

func (r *ReservationReadStore) FindByUserEndingAfter(ctx context.Context, userID string, after time.Time) ([]*readmodel.ReservationRM, error) {
	rows, err := r.queries.ListReservationDetailsByUserEndingAfter(ctx, r.db, userID, pgconv.TimeToPgtype(after))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations of user", err)
	}
	return r.toReadModels(ctx, rows, readmodel.RelCatalog)
}

func (r *ReservationReadStore) FindRecentCoPlayers(ctx context.Context, userID string, limit int) ([]readmodel.UserRM, error) {
	if limit > math.MaxInt32 {
		limit = math.MaxInt32
	}
	// #nosec G115 -- clamped above
	rows, err := r.queries.ListRecentCoPlayers(ctx, r.db, userID, int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent co-players", err)
	}

	result := make([]readmodel.UserRM, len(rows))
	for i, row := range rows {
		result[i] = *converter.UserToReadModel(row)
	}
	return result, nil
}

func (r *ReservationReadStore) single(ctx context.Context, rows []query.ReservationDetailRow, rels readmodel.Relations) (*readmodel.ReservationRM, error) {
	list, err := r.toReadModels(ctx, rows, rels)
	if err != nil {
		return nil, err
	}
	return list[0], nil
}

func (r *ReservationReadStore) toReadModels(ctx context.Context, rows []query.ReservationDetailRow, rels readmodel.Relations) ([]*readmodel.ReservationRM, error) {
	result := make([]*readmodel.ReservationRM, len(rows))
	byID := make(map[int64]*readmodel.ReservationRM, len(rows))
	ids := make([]int64, len(rows))
	for i, row := range rows {
		result[i] = converter.ReservationDetailToReadModel(row, rels)
		byID[row.ID] = result[i]
		ids[i] = row.ID
	}

	if !rels.Has(readmodel.RelParticipants) || len(ids) == 0 {
		return result, nil
	}

	participants, err := r.queries.ListParticipants(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load participants", err)
	}
	for _, p := range participants {
		if rm, ok := byID[p.ReservationID]; ok {
			rm.Participants = append(rm.Participants, converter.ParticipantToDomain(p))
		}
	}
	return result, nil
}
