package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `r.id, r.hour_start, r.hour_end, r.description, r.required_material, r.total_places,
    r.shop_event, r.event_id, r.confirmation_notification, r.difficulty_id, r.game_id, r.table_id,
    r.created_at, r.updated_at`

func scanReservation(row interface{ Scan(...any) error }, i *Reservation, extra ...any) error {
	dest := []any{
		&i.ID,
		&i.HourStart,
		&i.HourEnd,
		&i.Description,
		&i.RequiredMaterial,
		&i.TotalPlaces,
		&i.ShopEvent,
		&i.EventID,
		&i.ConfirmationNotification,
		&i.DifficultyID,
		&i.GameID,
		&i.TableID,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

const createReservation = `-- name: CreateReservation :one
INSERT INTO reservations (
    hour_start, hour_end, description, required_material, total_places,
    shop_event, event_id, difficulty_id, game_id, table_id
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
)
RETURNING id
`

type CreateReservationParams struct {
	HourStart        pgtype.Timestamptz
	HourEnd          pgtype.Timestamptz
	Description      string
	RequiredMaterial string
	TotalPlaces      int32
	ShopEvent        bool
	EventID          pgtype.Text
	DifficultyID     pgtype.Int8
	GameID           pgtype.Int8
	TableID          pgtype.Int8
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (int64, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.HourStart,
		arg.HourEnd,
		arg.Description,
		arg.RequiredMaterial,
		arg.TotalPlaces,
		arg.ShopEvent,
		arg.EventID,
		arg.DifficultyID,
		arg.GameID,
		arg.TableID,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const updateReservation = `-- name: UpdateReservation :execrows
UPDATE reservations
SET hour_start = $2,
    hour_end = $3,
    description = $4,
    required_material = $5,
    total_places = $6,
    event_id = $7,
    difficulty_id = $8,
    game_id = $9,
    table_id = $10,
    updated_at = now()
WHERE id = $1
`

type UpdateReservationParams struct {
	ID               int64
	HourStart        pgtype.Timestamptz
	HourEnd          pgtype.Timestamptz
	Description      string
	RequiredMaterial string
	TotalPlaces      int32
	EventID          pgtype.Text
	DifficultyID     pgtype.Int8
	GameID           pgtype.Int8
	TableID          pgtype.Int8
}

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservation,
		arg.ID,
		arg.HourStart,
		arg.HourEnd,
		arg.Description,
		arg.RequiredMaterial,
		arg.TotalPlaces,
		arg.EventID,
		arg.DifficultyID,
		arg.GameID,
		arg.TableID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteReservation = `-- name: DeleteReservation :execrows
DELETE FROM reservations WHERE id = $1
`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id int64) (int64, error) {
	result, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getReservationForUpdate = `-- name: GetReservationForUpdate :one
SELECT ` + reservationColumns + `
FROM reservations r
WHERE r.id = $1
FOR UPDATE
`

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id int64) (Reservation, error) {
	row := db.QueryRow(ctx, getReservationForUpdate, id)
	var i Reservation
	err := scanReservation(row, &i)
	return i, err
}

const markUpcomingNotified = `-- name: MarkUpcomingNotified :execrows
UPDATE reservations
SET confirmation_notification = true,
    updated_at = now()
WHERE id = $1
  AND NOT confirmation_notification
`

// MarkUpcomingNotified affects one row only for the first caller.
func (q *Queries) MarkUpcomingNotified(ctx context.Context, db DBTX, id int64) (int64, error) {
	result, err := db.Exec(ctx, markUpcomingNotified, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
