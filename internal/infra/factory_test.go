//go:build unit

package infra_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"wildhaven/internal/events"
	"wildhaven/internal/gateway"
	"wildhaven/internal/infra"
	"wildhaven/internal/infra/backendapi"
	"wildhaven/internal/infra/store"
	"wildhaven/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway() *gateway.Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return gateway.NewClient(http.DefaultClient, events.NewBus(logger), logger)
}

func TestNewCabinService(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("flag off selects the store adapter", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Features.UseBackendCabins = false

		svc, err := infra.NewCabinService(cfg, nil, newTestGateway(), logger)

		require.NoError(t, err)
		assert.IsType(t, &store.CabinService{}, svc)
	})

	t.Run("flag on selects the backend adapter", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Features.UseBackendCabins = true

		svc, err := infra.NewCabinService(cfg, nil, newTestGateway(), logger)

		require.NoError(t, err)
		assert.IsType(t, &backendapi.CabinService{}, svc)
	})

	t.Run("backend adapter without a base url is a startup failure", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Features.UseBackendCabins = true
		cfg.Backend.BaseURL = ""

		_, err := infra.NewCabinService(cfg, nil, newTestGateway(), logger)

		assert.Error(t, err)
	})

	t.Run("store adapter ignores the backend url entirely", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Features.UseBackendCabins = false
		cfg.Backend.BaseURL = ""

		svc, err := infra.NewCabinService(cfg, nil, newTestGateway(), logger)

		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestCabinProviderName(t *testing.T) {
	assert.Equal(t, "store", infra.CabinProviderName(config.FeatureFlags{}))
	assert.Equal(t, "backend", infra.CabinProviderName(config.FeatureFlags{UseBackendCabins: true}))
}
