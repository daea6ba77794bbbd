package bootstrap

import (
	"net/http"

	"wildhaven/internal/gateway"
	"wildhaven/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewHTTPClient,
		gateway.NewClient,
	),
)

func NewHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Backend.Timeout}
}
