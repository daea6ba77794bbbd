// Package infra wires concrete adapters to the service ports. The factory is
// the only place feature flags are read; swapping a flag changes which adapter
// backs a port without touching use-case or caller code.
package infra

import (
	"log/slog"

	"wildhaven/internal/gateway"
	"wildhaven/internal/infra/backendapi"
	"wildhaven/internal/infra/store"
	"wildhaven/internal/pkg/config"
	"wildhaven/internal/usecase"
)

// NewCabinService selects the Cabin port adapter: the remote backend API when
// USE_BACKEND_CABINS is set, the row store otherwise.
func NewCabinService(
	cfg config.Config,
	db store.Querier,
	client *gateway.Client,
	logger *slog.Logger,
) (usecase.CabinService, error) {
	if cfg.Features.UseBackendCabins {
		return backendapi.NewCabinService(cfg.Backend, client)
	}
	return store.NewCabinService(db, logger), nil
}

// CabinProviderName reports which provider the flags select, for diagnostics
// only.
func CabinProviderName(flags config.FeatureFlags) string {
	if flags.UseBackendCabins {
		return "backend"
	}
	return "store"
}
