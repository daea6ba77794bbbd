// Package backendapi implements the Cabin port against the remote backend API
// through the call gateway. The backend DTO shape stays inside this package.
package backendapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wildhaven/internal/domain/cabin"
	"wildhaven/internal/gateway"
	"wildhaven/internal/pkg/config"
	"wildhaven/internal/pkg/errs"
	"wildhaven/internal/pkg/result"
	"wildhaven/internal/usecase"
)

// cabinDTO is the backend API response shape. Mapping to the domain Cabin
// happens in this adapter only.
type cabinDTO struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	MaxCapacity  int     `json:"maxCapacity"`
	RegularPrice float64 `json:"regularPrice"`
	Discount     float64 `json:"discount"`
	Description  string  `json:"description,omitempty"`
	Image        string  `json:"image"`
	CreatedAt    string  `json:"createdAt,omitempty"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
}

type CabinService struct {
	baseURL string
	client  *gateway.Client
}

// NewCabinService fails when the backend base URL is missing: that is a fatal
// startup error for this adapter, not a per-call one.
func NewCabinService(cfg config.BackendConfig, client *gateway.Client) (*CabinService, error) {
	if cfg.BaseURL == "" {
		return nil, errs.New("BACKEND_API_URL is required for the backend cabin adapter")
	}
	return &CabinService{
		baseURL: strings.TrimRight(cfg.BaseURL, "/") + "/api/v1",
		client:  client,
	}, nil
}

var _ usecase.CabinService = (*CabinService)(nil)

func (s *CabinService) GetCabins(ctx context.Context) result.Result[[]cabin.Cabin] {
	res := gateway.Get[[]cabinDTO](ctx, s.client, s.baseURL+"/cabins")
	if !res.OK() {
		return result.Err[[]cabin.Cabin](res.Err())
	}
	dtos := res.Value()
	cabins := make([]cabin.Cabin, len(dtos))
	for i, dto := range dtos {
		cabins[i] = toCabin(dto)
	}
	return result.Ok(cabins)
}

func (s *CabinService) GetCabin(ctx context.Context, id int64) result.Result[cabin.Cabin] {
	res := gateway.Get[cabinDTO](ctx, s.client, fmt.Sprintf("%s/cabins/%d", s.baseURL, id))
	if !res.OK() {
		return result.Err[cabin.Cabin](res.Err())
	}
	return result.Ok(toCabin(res.Value()))
}

func (s *CabinService) GetCabinPrice(ctx context.Context, id int64) result.Result[cabin.Price] {
	res := s.GetCabin(ctx, id)
	if !res.OK() {
		return result.Err[cabin.Price](res.Err())
	}
	c := res.Value()
	return result.Ok(cabin.Price{RegularPrice: c.RegularPrice, Discount: c.Discount})
}

func (s *CabinService) CreateCabin(_ context.Context, _ cabin.CreateInput) result.Result[cabin.Cabin] {
	return result.Err[cabin.Cabin](result.NotImplemented("create cabin not supported in guest deployment"))
}

func (s *CabinService) UpdateCabin(_ context.Context, _ int64, _ cabin.UpdateInput) result.Result[cabin.Cabin] {
	return result.Err[cabin.Cabin](result.NotImplemented("update cabin not supported in guest deployment"))
}

func (s *CabinService) DeleteCabin(_ context.Context, _ int64) result.Result[result.Unit] {
	return result.Err[result.Unit](result.NotImplemented("delete cabin not supported in guest deployment"))
}

func toCabin(dto cabinDTO) cabin.Cabin {
	return cabin.Cabin{
		ID:           dto.ID,
		Name:         dto.Name,
		MaxCapacity:  dto.MaxCapacity,
		RegularPrice: dto.RegularPrice,
		Discount:     dto.Discount,
		Description:  dto.Description,
		Image:        dto.Image,
		CreatedAt:    parseTimestamp(dto.CreatedAt),
		UpdatedAt:    parseTimestamp(dto.UpdatedAt),
	}
}

func parseTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
