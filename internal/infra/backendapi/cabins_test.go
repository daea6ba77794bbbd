//go:build unit

package backendapi_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"wildhaven/internal/domain/cabin"
	"wildhaven/internal/gateway"
	"wildhaven/internal/infra/backendapi"
	"wildhaven/internal/pkg/config"
	"wildhaven/internal/pkg/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, baseURL string) *backendapi.CabinService {
	t.Helper()
	client := gateway.NewClient(http.DefaultClient, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc, err := backendapi.NewCabinService(config.BackendConfig{BaseURL: baseURL}, client)
	require.NoError(t, err)
	return svc
}

func TestNewCabinService(t *testing.T) {
	t.Run("missing base url fails at construction", func(t *testing.T) {
		client := gateway.NewClient(http.DefaultClient, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
		_, err := backendapi.NewCabinService(config.BackendConfig{}, client)
		assert.Error(t, err)
	})

	t.Run("base url present succeeds", func(t *testing.T) {
		svc := newService(t, "http://backend.local")
		assert.NotNil(t, svc)
	})
}

func TestCabinServiceReads(t *testing.T) {
	t.Run("get cabins maps the backend DTOs", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/cabins", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id":1,"name":"001","maxCapacity":2,"regularPrice":250,"discount":0,"image":"001.jpg"},
				{"id":2,"name":"002","maxCapacity":4,"regularPrice":350,"discount":25,"image":"002.jpg","createdAt":"2024-01-15T09:00:00Z"}
			]`))
		}))
		defer srv.Close()

		res := newService(t, srv.URL).GetCabins(context.Background())

		require.True(t, res.OK())
		cabins := res.Value()
		require.Len(t, cabins, 2)
		assert.Equal(t, "001", cabins[0].Name)
		assert.Equal(t, 4, cabins[1].MaxCapacity)
		assert.Equal(t, 25.0, cabins[1].Discount)
		require.NotNil(t, cabins[1].CreatedAt)
		assert.Nil(t, cabins[0].CreatedAt)
	})

	t.Run("get cabin hits the id route", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/cabins/7", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":7,"name":"007","maxCapacity":6,"regularPrice":500,"discount":50,"image":"007.jpg"}`))
		}))
		defer srv.Close()

		res := newService(t, srv.URL).GetCabin(context.Background(), 7)

		require.True(t, res.OK())
		assert.Equal(t, int64(7), res.Value().ID)
	})

	t.Run("cabin price derives from the cabin read", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":7,"name":"007","maxCapacity":6,"regularPrice":500,"discount":50,"image":"007.jpg"}`))
		}))
		defer srv.Close()

		res := newService(t, srv.URL).GetCabinPrice(context.Background(), 7)

		require.True(t, res.OK())
		assert.Equal(t, cabin.Price{RegularPrice: 500, Discount: 50}, res.Value())
	})

	t.Run("structured backend error surfaces unchanged", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"code":"CABIN_NOT_FOUND","messageKey":"errors.cabinNotFound"}`))
		}))
		defer srv.Close()

		res := newService(t, srv.URL).GetCabin(context.Background(), 99)

		require.False(t, res.OK())
		assert.Equal(t, result.CodeCabinNotFound, res.Err().Code)
	})
}

func TestCabinServiceMutations(t *testing.T) {
	svc := newService(t, "http://backend.local")

	t.Run("create is not implemented", func(t *testing.T) {
		res := svc.CreateCabin(context.Background(), cabin.CreateInput{Name: "008"})
		require.False(t, res.OK())
		assert.Equal(t, result.CodeNotImplemented, res.Err().Code)
	})

	t.Run("update is not implemented", func(t *testing.T) {
		res := svc.UpdateCabin(context.Background(), 1, cabin.UpdateInput{})
		require.False(t, res.OK())
		assert.Equal(t, result.CodeNotImplemented, res.Err().Code)
	})

	t.Run("delete is not implemented", func(t *testing.T) {
		res := svc.DeleteCabin(context.Background(), 1)
		require.False(t, res.OK())
		assert.Equal(t, result.CodeNotImplemented, res.Err().Code)
	})
}
