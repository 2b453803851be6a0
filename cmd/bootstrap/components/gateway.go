package components

import (
	"context"
	"log/slog"

	"tabletop-reserve/internal/infra/gateway/gamecatalog"
	"tabletop-reserve/internal/infra/gateway/push"
	"tabletop-reserve/internal/pkg/clock"
	"tabletop-reserve/internal/pkg/config"
	"tabletop-reserve/internal/pkg/metrics"
	"tabletop-reserve/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewNotificationGateway,
		NewGameLookupGateway,
	),
)

// NewNotificationGateway publishes to AMQP when configured and only logs otherwise.
func NewNotificationGateway(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (shared.NotificationGateway, error) {
	if cfg.AMQP.URL == "" {
		logger.Warn("AMQP_URL not set, push notifications will only be logged")
		return push.NewLogGateway(logger), nil
	}

	publisher, err := push.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, clk, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

// NewGameLookupGateway returns nil when no remote catalog is configured.
func NewGameLookupGateway(lc fx.Lifecycle, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) shared.GameLookupGateway {
	gc := cfg.GameCatalog
	if gc.BaseURL == "" {
		return nil
	}

	client := gamecatalog.NewClient(gamecatalog.Config{
		BaseURL: gc.BaseURL,
		Timeout: gc.Timeout,
	})
	if gc.RedisAddr == "" {
		return client
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     gc.RedisAddr,
		Password: gc.RedisPassword,
	})
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return gamecatalog.NewCached(client, rdb, gc.CacheTTL, m, logger)
}
