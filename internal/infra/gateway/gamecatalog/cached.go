package gamecatalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"tabletop-reserve/internal/pkg/metrics"
	"tabletop-reserve/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "gamecatalog:"

// Cached is a read-through Redis cache in front of another lookup gateway. Redis faults are
// logged and the lookup falls through to the wrapped gateway. Misses are not cached.
type Cached struct {
	next    shared.GameLookupGateway
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewCached(next shared.GameLookupGateway, client *redis.Client, ttl time.Duration, m *metrics.Metrics, logger *slog.Logger) *Cached {
	return &Cached{
		next:    next,
		client:  client,
		ttl:     ttl,
		metrics: m,
		logger:  logger,
	}
}

func (c *Cached) FetchGameByExternalID(ctx context.Context, externalID string) (*shared.GameMetadata, error) {
	key := keyPrefix + externalID

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var meta shared.GameMetadata
		if jerr := json.Unmarshal(raw, &meta); jerr == nil {
			c.metrics.GameLookups.WithLabelValues("cache_hit").Inc()
			return &meta, nil
		}
		c.logger.Warn("Discarding unreadable cached game", "key", key)
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("Game cache read failed", "key", key, "error", err.Error())
	}

	meta, err := c.next.FetchGameByExternalID(ctx, externalID)
	if err != nil {
		c.metrics.GameLookups.WithLabelValues("error").Inc()
		return nil, err
	}
	if meta == nil {
		c.metrics.GameLookups.WithLabelValues("miss").Inc()
		return nil, nil
	}
	c.metrics.GameLookups.WithLabelValues("remote_hit").Inc()

	payload, err := json.Marshal(meta)
	if err == nil {
		err = c.client.Set(ctx, key, payload, c.ttl).Err()
	}
	if err != nil {
		c.logger.Warn("Game cache write failed", "key", key, "error", err.Error())
	}
	return meta, nil
}
