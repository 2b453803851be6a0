package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationDetailSelect = `SELECT ` + reservationColumns + `,
    d.name, g.name, g.description, g.category_name, g.external_id,
    t.name, t.shop_id, s.name, s.logo_url
FROM reservations r
LEFT JOIN difficulties d ON d.id = r.difficulty_id
LEFT JOIN games g ON g.id = r.game_id
LEFT JOIN tables t ON t.id = r.table_id
LEFT JOIN shops s ON s.id = t.shop_id
`

func scanReservationDetail(row interface{ Scan(...any) error }) (ReservationDetailRow, error) {
	var i ReservationDetailRow
	err := scanReservation(row, &i.Reservation,
		&i.DifficultyName,
		&i.GameName,
		&i.GameDescription,
		&i.GameCategoryName,
		&i.GameExternalID,
		&i.TableName,
		&i.TableShopID,
		&i.ShopName,
		&i.ShopLogoUrl,
	)
	return i, err
}

func collectReservationDetails(rows pgx.Rows, err error) ([]ReservationDetailRow, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ReservationDetailRow
	for rows.Next() {
		i, err := scanReservationDetail(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getReservationDetail = `-- name: GetReservationDetail :one
` + reservationDetailSelect + `WHERE r.id = $1
`

func (q *Queries) GetReservationDetail(ctx context.Context, db DBTX, id int64) (ReservationDetailRow, error) {
	return scanReservationDetail(db.QueryRow(ctx, getReservationDetail, id))
}

const listReservationDetails = `-- name: ListReservationDetails :many
` + reservationDetailSelect + `ORDER BY r.hour_start, r.id
`

func (q *Queries) ListReservationDetails(ctx context.Context, db DBTX) ([]ReservationDetailRow, error) {
	return collectReservationDetails(db.Query(ctx, listReservationDetails))
}

const listReservationDetailsByTableBetween = `-- name: ListReservationDetailsByTableBetween :many
` + reservationDetailSelect + `WHERE r.table_id = $1
  AND r.hour_start >= $2
  AND r.hour_start < $3
ORDER BY r.hour_start, r.id
`

func (q *Queries) ListReservationDetailsByTableBetween(ctx context.Context, db DBTX, tableID int64, from, to pgtype.Timestamptz) ([]ReservationDetailRow, error) {
	return collectReservationDetails(db.Query(ctx, listReservationDetailsByTableBetween, tableID, from, to))
}

const listShopEventsStartingAfter = `-- name: ListShopEventsStartingAfter :many
` + reservationDetailSelect + `WHERE t.shop_id = $1
  AND r.shop_event
  AND r.event_id IS NOT NULL
  AND r.hour_start > $2
ORDER BY r.hour_start, r.id
`

func (q *Queries) ListShopEventsStartingAfter(ctx context.Context, db DBTX, shopID int64, after pgtype.Timestamptz) ([]ReservationDetailRow, error) {
	return collectReservationDetails(db.Query(ctx, listShopEventsStartingAfter, shopID, after))
}

const listReservationDetailsStartingBetween = `-- name: ListReservationDetailsStartingBetween :many
` + reservationDetailSelect + `WHERE r.hour_start >= $1
  AND r.hour_start < $2
ORDER BY r.hour_start, r.id
`

func (q *Queries) ListReservationDetailsStartingBetween(ctx context.Context, db DBTX, from, to pgtype.Timestamptz) ([]ReservationDetailRow, error) {
	return collectReservationDetails(db.Query(ctx, listReservationDetailsStartingBetween, from, to))
}

const listReservationDetailsByUserEndingAfter = `-- name: ListReservationDetailsByUserEndingAfter :many
` + reservationDetailSelect + `JOIN user_reservations ur ON ur.reservation_id = r.id
WHERE ur.user_id = $1
  AND r.hour_end > $2
ORDER BY r.hour_start, r.id
`

func (q *Queries) ListReservationDetailsByUserEndingAfter(ctx context.Context, db DBTX, userID string, after pgtype.Timestamptz) ([]ReservationDetailRow, error) {
	return collectReservationDetails(db.Query(ctx, listReservationDetailsByUserEndingAfter, userID, after))
}

const listRecentCoPlayers = `-- name: ListRecentCoPlayers :many
SELECT u.id, u.name, u.notification_token
FROM user_reservations mine
JOIN user_reservations other
  ON other.reservation_id = mine.reservation_id
 AND other.user_id <> mine.user_id
JOIN reservations r ON r.id = mine.reservation_id
JOIN users u ON u.id = other.user_id
WHERE mine.user_id = $1
ORDER BY r.hour_start DESC, other.id DESC
LIMIT $2
`

func (q *Queries) ListRecentCoPlayers(ctx context.Context, db DBTX, userID string, limit int32) ([]User, error) {
	rows, err := db.Query(ctx, listRecentCoPlayers, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		var i User
		if err := rows.Scan(&i.ID, &i.Name, &i.NotificationToken); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
