//go:build unit

package gamecatalog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"tabletop-reserve/internal/infra/gateway/gamecatalog"
	"tabletop-reserve/internal/pkg/metrics"
	"tabletop-reserve/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchGameByExternalID(t *testing.T) {
	srv := newCatalogServer(t, nil)
	client := gamecatalog.NewClient(gamecatalog.Config{BaseURL: srv.URL + "/", Timeout: time.Second})

	tests := []struct {
		name      string
		id        string
		want      *shared.GameMetadata
		wantError bool
	}{
		{
			name: "found",
			id:   "13",
			want: &shared.GameMetadata{ExternalID: "13", Name: "Catan", Description: "Trade and build", CategoryName: "Strategy"},
		},
		{name: "unknown id", id: "99"},
		{name: "nameless payload counts as missing", id: "14"},
		{name: "upstream failure", id: "500", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.FetchGameByExternalID(context.Background(), tt.id)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type failingLookup struct{}

func (failingLookup) FetchGameByExternalID(context.Context, string) (*shared.GameMetadata, error) {
	return nil, errors.New("catalog unreachable")
}

// With Redis down every lookup goes to the wrapped gateway.
func TestCached_RedisUnavailable(t *testing.T) {
	var hits atomic.Int32
	srv := newCatalogServer(t, &hits)

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	t.Cleanup(func() { _ = rdb.Close() })

	m := metrics.NewNop()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cached := gamecatalog.NewCached(gamecatalog.NewClient(gamecatalog.Config{BaseURL: srv.URL}), rdb, time.Hour, m, logger)

	for range 2 {
		got, err := cached.FetchGameByExternalID(context.Background(), "13")
		require.NoError(t, err)
		assert.Equal(t, "Catan", got.Name)
	}
	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, 2.0, testutil.ToFloat64(m.GameLookups.WithLabelValues("remote_hit")))

	got, err := cached.FetchGameByExternalID(context.Background(), "99")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GameLookups.WithLabelValues("miss")))

	failing := gamecatalog.NewCached(failingLookup{}, rdb, time.Hour, m, logger)
	_, err = failing.FetchGameByExternalID(context.Background(), "13")
	assert.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GameLookups.WithLabelValues("error")))
}
