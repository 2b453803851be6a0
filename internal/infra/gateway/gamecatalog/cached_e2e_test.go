//go:build e2e

package gamecatalog_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"tabletop-reserve/internal/infra/gateway/gamecatalog"
	"tabletop-reserve/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start Redis container")
	t.Cleanup(func() {
		if err := c.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate Redis container: %v", err)
		}
	})

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("%s:%s", host, port.Port())
}

func TestCached_ReadThrough(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: startRedis(t)})
	t.Cleanup(func() { _ = rdb.Close() })

	var hits atomic.Int32
	srv := newCatalogServer(t, &hits)
	m := metrics.NewNop()
	cached := gamecatalog.NewCached(gamecatalog.NewClient(gamecatalog.Config{BaseURL: srv.URL}), rdb, time.Hour,
		m, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx := context.Background()
	for range 3 {
		got, err := cached.FetchGameByExternalID(ctx, "13")
		require.NoError(t, err)
		assert.Equal(t, "Catan", got.Name)
		assert.Equal(t, "Strategy", got.CategoryName)
	}
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, 2.0, testutil.ToFloat64(m.GameLookups.WithLabelValues("cache_hit")))

	ttl, err := rdb.TTL(ctx, "gamecatalog:13").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)

	// Misses are not cached.
	for range 2 {
		got, err := cached.FetchGameByExternalID(ctx, "99")
		require.NoError(t, err)
		assert.Nil(t, got)
	}
	assert.Equal(t, int32(3), hits.Load())
}
