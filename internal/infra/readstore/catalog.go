package readstore

import (
	"context"

	"tabletop-reserve/internal/infra"
	"tabletop-reserve/internal/infra/query"
	"tabletop-reserve/internal/infra/repository/converter"
	"tabletop-reserve/internal/usecase/readmodel"
)

type CatalogViewQueries interface {
	GetShop(ctx context.Context, db query.DBTX, id int64) (query.Shop, error)
	GetUser(ctx context.Context, db query.DBTX, id string) (query.User, error)
	GetUserReservation(ctx context.Context, db query.DBTX, userID string, reservationID int64) (query.UserReservation, error)
}

type CatalogReadStore struct {
	queries CatalogViewQueries
	db      query.DBTX
}

func NewCatalogReadStore(queries *query.Queries, db query.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) ShopByID(ctx context.Context, id int64) (*readmodel.ShopRM, error) {
	row, err := r.queries.GetShop(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find shop", err)
	}
	return converter.ShopToReadModel(row), nil
}

func (r *CatalogReadStore) UserByID(ctx context.Context, id string) (*readmodel.UserRM, error) {
	row, err := r.queries.GetUser(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return converter.UserToReadModel(row), nil
}

func (r *CatalogReadStore) ParticipationByKey(ctx context.Context, userID string, reservationID int64) (*readmodel.ParticipationRM, error) {
	row, err := r.queries.GetUserReservation(ctx, r.db, userID, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find participation", err)
	}
	return converter.ParticipationToReadModel(row), nil
}
