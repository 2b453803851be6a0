package components

import (
	"tabletop-reserve/internal/handler"
	"tabletop-reserve/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewParticipationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
