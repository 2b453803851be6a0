package bootstrap

import (
	"tabletop-reserve/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.JobsModule,
	components.HandlerModule,
)
