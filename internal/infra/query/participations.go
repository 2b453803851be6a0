package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createUserReservation = `-- name: CreateUserReservation :one
INSERT INTO user_reservations (user_id, reservation_id, confirmed, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id
`

type CreateUserReservationParams struct {
	UserID        string
	ReservationID int64
	Confirmed     bool
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) CreateUserReservation(ctx context.Context, db DBTX, arg CreateUserReservationParams) (int64, error) {
	row := db.QueryRow(ctx, createUserReservation,
		arg.UserID,
		arg.ReservationID,
		arg.Confirmed,
		arg.CreatedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getUserReservation = `-- name: GetUserReservation :one
SELECT id, user_id, reservation_id, confirmed, created_at
FROM user_reservations
WHERE user_id = $1 AND reservation_id = $2
`

func (q *Queries) GetUserReservation(ctx context.Context, db DBTX, userID string, reservationID int64) (UserReservation, error) {
	row := db.QueryRow(ctx, getUserReservation, userID, reservationID)
	var i UserReservation
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ReservationID,
		&i.Confirmed,
		&i.CreatedAt,
	)
	return i, err
}

const updateUserReservationConfirmed = `-- name: UpdateUserReservationConfirmed :execrows
UPDATE user_reservations SET confirmed = $2 WHERE id = $1
`

func (q *Queries) UpdateUserReservationConfirmed(ctx context.Context, db DBTX, id int64, confirmed bool) (int64, error) {
	result, err := db.Exec(ctx, updateUserReservationConfirmed, id, confirmed)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteUserReservation = `-- name: DeleteUserReservation :execrows
DELETE FROM user_reservations WHERE id = $1
`

func (q *Queries) DeleteUserReservation(ctx context.Context, db DBTX, id int64) (int64, error) {
	result, err := db.Exec(ctx, deleteUserReservation, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listParticipants = `-- name: ListParticipants :many
SELECT ur.reservation_id, u.id, u.name, u.notification_token, ur.confirmed
FROM user_reservations ur
JOIN users u ON u.id = ur.user_id
WHERE ur.reservation_id = ANY($1::bigint[])
ORDER BY ur.reservation_id, ur.created_at, ur.id
`

// ListParticipants loads the participants of several reservations at once, in join order.
func (q *Queries) ListParticipants(ctx context.Context, db DBTX, reservationIDs []int64) ([]ParticipantRow, error) {
	rows, err := db.Query(ctx, listParticipants, reservationIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ParticipantRow
	for rows.Next() {
		var i ParticipantRow
		if err := rows.Scan(
			&i.ReservationID,
			&i.UserID,
			&i.Name,
			&i.NotificationToken,
			&i.Confirmed,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
