package repository

import (
	"context"

	"tabletop-reserve/internal/infra"
	"tabletop-reserve/internal/infra/query"
	"tabletop-reserve/internal/infra/repository/converter"
	"tabletop-reserve/internal/usecase/readmodel"
)

type UserQueries interface {
	GetUser(ctx context.Context, db query.DBTX, id string) (query.User, error)
}

type UserRepository struct {
	queries UserQueries
	db      query.DBTX
}

func NewUserRepository(queries *query.Queries, db query.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*readmodel.UserRM, error) {
	row, err := r.queries.GetUser(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return converter.UserToReadModel(row), nil
}
