//go:build e2e

package reservation_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	resdto "tabletop-reserve/internal/handler/dto/response"
	"tabletop-reserve/internal/pkg/config"
	"tabletop-reserve/tests/common/dbtest"
	helper "tabletop-reserve/tests/common/httptest"
	"tabletop-reserve/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
)

type reservationSuite struct {
	e2e.SharedSuite
	catalogHits atomic.Int32

	shopID  int64
	tableID int64
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	s := new(reservationSuite)

	// Remote catalog stub: id 13 is Catan, everything else is unknown.
	catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.catalogHits.Add(1)
		if r.URL.Path != "/games/13" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `{"name":"Catan","description":"Trade and build","category":"Strategy"}`)
	}))
	t.Cleanup(catalog.Close)

	s.Configure = func(cfg *config.Config) {
		cfg.GameCatalog.BaseURL = catalog.URL
	}
	suite.Run(t, s)
}

func (s *reservationSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.catalogHits.Store(0)

	logo := "https://cdn.example.com/board-room.png"
	s.shopID = dbtest.CreateTestShop(s.T(), s.DB, "Board Room", &logo)
	s.tableID = dbtest.CreateTestTable(s.T(), s.DB, s.shopID, "Table 1")
}

func (s *reservationSuite) createURL() string {
	return fmt.Sprintf("/api/shops/%d/reservations", s.shopID)
}

func (s *reservationSuite) gameCount() int {
	var n int
	require.NoError(s.T(), s.DB.QueryRow(s.T().Context(), "SELECT count(*) FROM games").Scan(&n))
	return n
}

func (s *reservationSuite) TestCreateAndRead() {
	t := s.T()
	dbtest.CreateTestGame(t, s.DB, "Catan", nil)
	difficulty := dbtest.DifficultyID(t, s.DB, "Medium")

	body := map[string]any{
		"hour_start":    "2030-03-14T18:00:00Z",
		"hour_end":      "2030-03-14T21:00:00Z",
		"description":   "Friday campaign night",
		"total_places":  4,
		"shop_event":    true,
		"difficulty_id": difficulty,
		"game":          "cat",
		"table_id":      s.tableID,
	}

	w := helper.PerformRequest(t, s.Router, http.MethodPost, s.createURL(), body)
	var created resdto.ReservationResponse
	helper.AssertSuccessResponse(t, w, http.StatusCreated, &created)

	require.NotNil(t, created.Game)
	s.Equal("Catan", created.Game.Name)
	require.NotNil(t, created.Table)
	s.Equal("Board Room", created.Table.Shop.Name)
	require.NotNil(t, created.EventID)
	s.Equal(fmt.Sprintf("%d-%d-14/03/2030", created.Game.ID, s.tableID), *created.EventID)
	s.Zero(s.catalogHits.Load(), "local match needs no remote lookup")

	s.Run("get by id", func() {
		w := helper.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("%s/%d", reservationsURL, created.ID), nil)
		var got resdto.ReservationResponse
		helper.AssertSuccessResponse(t, w, http.StatusOK, &got)
		s.True(created.HourStart.Equal(got.HourStart))
		s.Equal("Medium", got.Difficulty.Name)
	})

	s.Run("table day view uses local dates", func() {
		w := helper.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/tables/%d/reservations?date=2030-03-14", s.tableID), nil)
		var list []resdto.ReservationResponse
		helper.AssertSuccessResponse(t, w, http.StatusOK, &list)
		s.Len(list, 1)

		w = helper.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/tables/%d/reservations?date=2030-03-15", s.tableID), nil)
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("shop events", func() {
		w := helper.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/shops/%d/events", s.shopID), nil)
		var list []resdto.ReservationResponse
		helper.AssertSuccessResponse(t, w, http.StatusOK, &list)
		s.Len(list, 1)
	})
}

func (s *reservationSuite) TestRemoteGameImport() {
	t := s.T()
	body := map[string]any{
		"hour_start": "2030-04-01T17:00:00Z",
		"hour_end":   "2030-04-01T19:00:00Z",
		"game":       "13",
	}

	for range 2 {
		w := helper.PerformRequest(t, s.Router, http.MethodPost, s.createURL(), body)
		var created resdto.ReservationResponse
		helper.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotNil(t, created.Game)
		s.Equal("Catan", created.Game.Name)
		require.NotNil(t, created.Game.ExternalID)
		s.Equal("13", *created.Game.ExternalID)
	}

	s.Equal(1, s.gameCount(), "second create reuses the imported game")
	s.Equal(int32(1), s.catalogHits.Load())

	body["game"] = "99"
	w := helper.PerformRequest(t, s.Router, http.MethodPost, s.createURL(), body)
	helper.AssertErrorResponse(t, w, http.StatusNotFound, "")
}

func (s *reservationSuite) TestCreateValidation() {
	t := s.T()

	w := helper.PerformRequest(t, s.Router, http.MethodPost, s.createURL(), map[string]any{
		"hour_start": "2030-04-01T19:00:00Z",
		"hour_end":   "2030-04-01T17:00:00Z",
	})
	helper.AssertErrorResponse(t, w, http.StatusBadRequest, "")

	w = helper.PerformRequest(t, s.Router, http.MethodPost, s.createURL(), map[string]any{
		"hour_start": "2030-04-01T17:00:00Z",
		"hour_end":   "2030-04-01T19:00:00Z",
		"table_id":   s.tableID + 100,
	})
	helper.AssertErrorResponse(t, w, http.StatusNotFound, "")

	w = helper.PerformRequest(t, s.Router, http.MethodPost, "/api/shops/999/reservations", map[string]any{
		"hour_start": "2030-04-01T17:00:00Z",
		"hour_end":   "2030-04-01T19:00:00Z",
		"shop_event": true,
		"game":       "13",
		"table_id":   s.tableID,
	})
	helper.AssertErrorResponse(t, w, http.StatusNotFound, "Shop not found")

	var n int
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM reservations").Scan(&n))
	s.Zero(n)
}

func (s *reservationSuite) TestUpdateAndDelete() {
	t := s.T()
	gameID := dbtest.CreateTestGame(t, s.DB, "Catan", nil)
	start := time.Date(2030, time.March, 14, 18, 0, 0, 0, time.UTC)
	id := dbtest.CreateTestReservation(t, s.DB, start, start.Add(2*time.Hour), &gameID, &s.tableID)
	dbtest.CreateTestUser(t, s.DB, "ana", "Ana", nil)
	dbtest.CreateTestParticipation(t, s.DB, "ana", id, true)
	url := fmt.Sprintf("%s/%d", reservationsURL, id)

	s.Run("partial update", func() {
		w := helper.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{"total_places": 6})
		var got resdto.ReservationResponse
		helper.AssertSuccessResponse(t, w, http.StatusOK, &got)
		s.Equal(6, got.TotalPlaces)
		s.Equal("fixture", got.Description)
	})

	s.Run("invalid range leaves the row untouched", func() {
		w := helper.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{"hour_end": "2030-03-14T17:00:00Z"})
		s.Equal(http.StatusBadRequest, w.Code)

		var end time.Time
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT hour_end FROM reservations WHERE id = $1", id).Scan(&end))
		s.True(end.Equal(start.Add(2 * time.Hour)))
	})

	s.Run("delete cascades participations", func() {
		w := helper.PerformRequest(t, s.Router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, w.Code)

		var n int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM user_reservations").Scan(&n))
		s.Zero(n)

		w = helper.PerformRequest(t, s.Router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *reservationSuite) TestListEmpty() {
	w := helper.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL, nil)
	s.Equal(http.StatusNoContent, w.Code)
	s.Empty(w.Body.String())
}

func (s *reservationSuite) TestLastPlayers() {
	t := s.T()
	for _, id := range []string{"me", "ana", "bob"} {
		dbtest.CreateTestUser(t, s.DB, id, id, nil)
	}
	older := time.Date(2030, time.January, 5, 18, 0, 0, 0, time.UTC)
	newer := older.AddDate(0, 0, 7)

	r1 := dbtest.CreateTestReservation(t, s.DB, older, older.Add(time.Hour), nil, nil)
	r2 := dbtest.CreateTestReservation(t, s.DB, newer, newer.Add(time.Hour), nil, nil)
	dbtest.CreateTestParticipation(t, s.DB, "me", r1, true)
	dbtest.CreateTestParticipation(t, s.DB, "ana", r1, true)
	dbtest.CreateTestParticipation(t, s.DB, "me", r2, true)
	dbtest.CreateTestParticipation(t, s.DB, "bob", r2, true)
	dbtest.CreateTestParticipation(t, s.DB, "ana", r2, true)

	w := helper.PerformRequest(t, s.Router, http.MethodGet, "/api/users/me/players", nil)
	var players []resdto.PlayerResponse
	helper.AssertSuccessResponse(t, w, http.StatusOK, &players)

	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	s.Equal([]string{"ana", "bob"}, ids)
}
