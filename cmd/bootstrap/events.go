package bootstrap

import (
	"wildhaven/internal/events"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		events.NewBus,
	),
)
