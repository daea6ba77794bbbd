package components

import (
	"wildhaven/internal/pkg/clock"
	"wildhaven/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewCabinQueries,
		usecase.NewSettingsUseCases,
		usecase.NewBookingCommands,
		usecase.NewBookingQueries,
		usecase.NewGuestCommands,
		usecase.NewGuestQueries,
		usecase.NewAuthUseCases,
		usecase.NewUserUseCases,
		usecase.NewAvailabilityEngine,
	),
)
