package main

import (
	"context"
	"log/slog"
	"os"

	"wildhaven/cmd/bootstrap"
	"wildhaven/internal/infra"
	"wildhaven/internal/pkg/config"
	"wildhaven/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func init() {
	// Optional; real deployments configure through the environment.
	_ = godotenv.Load()
}

// runProviderCheck boots the composition root, reports which adapter backs the
// Cabin port, and exercises one read per core port. It is a diagnostics pass,
// not a server: the process exits when the checks finish.
func runProviderCheck(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg config.Config,
	cabins usecase.CabinQueries,
	siteSettings usecase.SettingsUseCases,
	logger *slog.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ctx := context.Background()

				provider := infra.CabinProviderName(cfg.Features)
				logger.Info("cabin provider check", slog.String("provider", provider))

				if res := cabins.GetCabins(ctx); res.OK() {
					logger.Info("cabins reachable", slog.Int("count", len(res.Value())))
				} else {
					logger.Error("cabins unreachable", slog.String("code", res.Err().Code))
				}

				if res := siteSettings.GetSettings(ctx); res.OK() {
					logger.Info("settings reachable", slog.Int("maxBookingLength", res.Value().MaxBookingLength))
				} else {
					logger.Error("settings unreachable", slog.String("code", res.Err().Code))
				}

				_ = shutdowner.Shutdown()
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Invoke(
			runProviderCheck,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application", "error", err)
	}
}
