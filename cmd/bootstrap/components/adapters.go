package components

import (
	"wildhaven/internal/infra"
	"wildhaven/internal/infra/identity"
	"wildhaven/internal/infra/store"
	"wildhaven/internal/usecase"

	"go.uber.org/fx"
)

// AdapterModule binds concrete adapters to the service ports. The cabin
// binding goes through the factory, the sole reader of provider flags.
var AdapterModule = fx.Module("adapters",
	fx.Provide(
		infra.NewCabinService,
		fx.Annotate(
			store.NewSettingsService,
			fx.As(new(usecase.SettingsService)),
		),
		fx.Annotate(
			store.NewBookingService,
			fx.As(new(usecase.BookingService)),
		),
		fx.Annotate(
			store.NewGuestService,
			fx.As(new(usecase.GuestService)),
		),
		fx.Annotate(
			identity.NewAuthService,
			fx.As(new(usecase.AuthService)),
		),
		fx.Annotate(
			identity.NewUserService,
			fx.As(new(usecase.UserService)),
		),
		func() identity.Source {
			// The embedding application swaps in a provider-backed source;
			// the standalone binary runs signed out.
			return identity.UnauthenticatedSource{}
		},
	),
)
