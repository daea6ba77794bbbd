package bootstrap

import (
	"wildhaven/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	EventsModule,
	GatewayModule,
	components.AdapterModule,
	components.UseCaseModule,
)
