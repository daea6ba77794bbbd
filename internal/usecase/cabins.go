package usecase

import (
	"context"

	"wildhaven/internal/domain/cabin"
	"wildhaven/internal/pkg/result"
)

// CabinQueries is the presentation layer's only entry point for cabin reads.
type CabinQueries interface {
	GetCabins(ctx context.Context) result.Result[[]cabin.Cabin]
	GetCabin(ctx context.Context, id int64) result.Result[cabin.Cabin]
	GetCabinPrice(ctx context.Context, id int64) result.Result[cabin.Price]
}

type cabinQueriesImpl struct {
	cabins CabinService
}

func NewCabinQueries(cabins CabinService) CabinQueries {
	return &cabinQueriesImpl{cabins: cabins}
}

func (q *cabinQueriesImpl) GetCabins(ctx context.Context) result.Result[[]cabin.Cabin] {
	return q.cabins.GetCabins(ctx)
}

func (q *cabinQueriesImpl) GetCabin(ctx context.Context, id int64) result.Result[cabin.Cabin] {
	return q.cabins.GetCabin(ctx, id)
}

func (q *cabinQueriesImpl) GetCabinPrice(ctx context.Context, id int64) result.Result[cabin.Price] {
	return q.cabins.GetCabinPrice(ctx, id)
}
