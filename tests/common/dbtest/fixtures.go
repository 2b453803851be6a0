//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, id, name string, token *string) string {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, name, notification_token) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING",
		id, name, token)
	require.NoError(t, err)
	return id
}

func CreateTestShop(t *testing.T, db DBLike, name string, logoURL *string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO shops (name, logo_url) VALUES ($1, $2) RETURNING id", name, logoURL).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestTable(t *testing.T, db DBLike, shopID int64, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO tables (shop_id, name) VALUES ($1, $2) RETURNING id", shopID, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestGame(t *testing.T, db DBLike, name string, externalID *string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO games (name, external_id) VALUES ($1, $2) RETURNING id", name, externalID).Scan(&id)
	require.NoError(t, err)
	return id
}

// DifficultyID returns the id of a seeded difficulty.
func DifficultyID(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), "SELECT id FROM difficulties WHERE name = $1", name).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestReservation inserts a plain reservation row; gameID and tableID may be nil.
func CreateTestReservation(t *testing.T, db DBLike, start, end time.Time, gameID, tableID *int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO reservations (hour_start, hour_end, description, total_places, game_id, table_id)
		VALUES ($1, $2, 'fixture', 4, $3, $4)
		RETURNING id`, start, end, gameID, tableID).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestParticipation(t *testing.T, db DBLike, userID string, reservationID int64, confirmed bool) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO user_reservations (user_id, reservation_id, confirmed)
		VALUES ($1, $2, $3)
		RETURNING id`, userID, reservationID, confirmed).Scan(&id)
	require.NoError(t, err)
	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), `
		INSERT INTO difficulties (name) VALUES ('Easy'), ('Medium'), ('Hard');
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
