package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getDifficulty = `-- name: GetDifficulty :one
SELECT id, name FROM difficulties WHERE id = $1
`

func (q *Queries) GetDifficulty(ctx context.Context, db DBTX, id int64) (Difficulty, error) {
	row := db.QueryRow(ctx, getDifficulty, id)
	var i Difficulty
	err := row.Scan(&i.ID, &i.Name)
	return i, err
}

const getTable = `-- name: GetTable :one
SELECT t.id, t.shop_id, t.name, s.name, s.logo_url
FROM tables t
JOIN shops s ON s.id = t.shop_id
WHERE t.id = $1
`

func (q *Queries) GetTable(ctx context.Context, db DBTX, id int64) (TableRow, error) {
	row := db.QueryRow(ctx, getTable, id)
	var i TableRow
	err := row.Scan(
		&i.ID,
		&i.ShopID,
		&i.Name,
		&i.ShopName,
		&i.ShopLogoUrl,
	)
	return i, err
}

const getShop = `-- name: GetShop :one
SELECT id, name, logo_url FROM shops WHERE id = $1
`

func (q *Queries) GetShop(ctx context.Context, db DBTX, id int64) (Shop, error) {
	row := db.QueryRow(ctx, getShop, id)
	var i Shop
	err := row.Scan(&i.ID, &i.Name, &i.LogoUrl)
	return i, err
}

const gameColumns = `id, name, description, category_name, external_id`

const findGameByName = `-- name: FindGameByName :one
SELECT ` + gameColumns + `
FROM games
WHERE name ILIKE '%' || $1 || '%' ESCAPE '\'
ORDER BY length(name), id
LIMIT 1
`

// FindGameByName prefers the shortest matching name, so "Catan" beats "Catan: Seafarers".
// The pattern must already have LIKE metacharacters escaped.
func (q *Queries) FindGameByName(ctx context.Context, db DBTX, pattern string) (Game, error) {
	row := db.QueryRow(ctx, findGameByName, pattern)
	var i Game
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.CategoryName,
		&i.ExternalID,
	)
	return i, err
}

const findGameByExternalID = `-- name: FindGameByExternalID :one
SELECT ` + gameColumns + `
FROM games
WHERE external_id = $1
`

func (q *Queries) FindGameByExternalID(ctx context.Context, db DBTX, externalID string) (Game, error) {
	row := db.QueryRow(ctx, findGameByExternalID, externalID)
	var i Game
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.CategoryName,
		&i.ExternalID,
	)
	return i, err
}

const createGame = `-- name: CreateGame :one
INSERT INTO games (name, description, category_name, external_id)
VALUES ($1, $2, $3, $4)
RETURNING id
`

type CreateGameParams struct {
	Name         string
	Description  string
	CategoryName string
	ExternalID   pgtype.Text
}

func (q *Queries) CreateGame(ctx context.Context, db DBTX, arg CreateGameParams) (int64, error) {
	row := db.QueryRow(ctx, createGame,
		arg.Name,
		arg.Description,
		arg.CategoryName,
		arg.ExternalID,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getUser = `-- name: GetUser :one
SELECT id, name, notification_token FROM users WHERE id = $1
`

func (q *Queries) GetUser(ctx context.Context, db DBTX, id string) (User, error) {
	row := db.QueryRow(ctx, getUser, id)
	var i User
	err := row.Scan(&i.ID, &i.Name, &i.NotificationToken)
	return i, err
}
