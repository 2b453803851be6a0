package bootstrap

import (
	"time"

	"tabletop-reserve/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
	),
)

// NewLocation is the shops' wall-clock zone shared by every layer.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.App.Location()
}
