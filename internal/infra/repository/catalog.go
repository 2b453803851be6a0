package repository

import (
	"context"
	"strings"

	"tabletop-reserve/internal/infra"
	"tabletop-reserve/internal/infra/query"
	"tabletop-reserve/internal/infra/repository/converter"
	"tabletop-reserve/internal/pkg/pgconv"
	"tabletop-reserve/internal/usecase/readmodel"
)

type CatalogQueries interface {
	GetDifficulty(ctx context.Context, db query.DBTX, id int64) (query.Difficulty, error)
	GetTable(ctx context.Context, db query.DBTX, id int64) (query.TableRow, error)
	GetShop(ctx context.Context, db query.DBTX, id int64) (query.Shop, error)
	FindGameByName(ctx context.Context, db query.DBTX, pattern string) (query.Game, error)
	FindGameByExternalID(ctx context.Context, db query.DBTX, externalID string) (query.Game, error)
	CreateGame(ctx context.Context, db query.DBTX, arg query.CreateGameParams) (int64, error)
}

type CatalogRepository struct {
	queries CatalogQueries
	db      query.DBTX
}

func NewCatalogRepository(queries *query.Queries, db query.DBTX) *CatalogRepository {
	return &CatalogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogRepository) DifficultyByID(ctx context.Context, id int64) (*readmodel.DifficultyRM, error) {
	row, err := r.queries.GetDifficulty(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find difficulty", err)
	}
	return &readmodel.DifficultyRM{ID: row.ID, Name: row.Name}, nil
}

func (r *CatalogRepository) TableByID(ctx context.Context, id int64) (*readmodel.TableRM, error) {
	row, err := r.queries.GetTable(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find table", err)
	}
	return converter.TableToReadModel(row), nil
}

func (r *CatalogRepository) ShopByID(ctx context.Context, id int64) (*readmodel.ShopRM, error) {
	row, err := r.queries.GetShop(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find shop", err)
	}
	return converter.ShopToReadModel(row), nil
}

func (r *CatalogRepository) FindGameByName(ctx context.Context, fragment string) (*readmodel.GameRM, error) {
	row, err := r.queries.FindGameByName(ctx, r.db, escapeLike(fragment))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find game by name", err)
	}
	return converter.GameToReadModel(row), nil
}

func (r *CatalogRepository) FindGameByExternalID(ctx context.Context, externalID string) (*readmodel.GameRM, error) {
	row, err := r.queries.FindGameByExternalID(ctx, r.db, externalID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find game by external id", err)
	}
	return converter.GameToReadModel(row), nil
}

func (r *CatalogRepository) CreateGame(ctx context.Context, game readmodel.GameRM) (int64, error) {
	id, err := r.queries.CreateGame(ctx, r.db, query.CreateGameParams{
		Name:         game.Name,
		Description:  game.Description,
		CategoryName: game.CategoryName,
		ExternalID:   pgconv.StringPtrToPgtype(game.ExternalID),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create game", err)
	}
	return id, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
