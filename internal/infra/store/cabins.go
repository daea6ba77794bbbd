package store

import (
	"context"
	"log/slog"

	"wildhaven/internal/domain/cabin"
	"wildhaven/internal/pkg/errs"
	"wildhaven/internal/pkg/result"
	"wildhaven/internal/usecase"

	"github.com/jackc/pgx/v5"
)

// CabinService is the row-store implementation of the Cabin port. This
// deployment reads cabins only; mutations are staff-application territory and
// return NOT_IMPLEMENTED.
type CabinService struct {
	db     Querier
	logger *slog.Logger
}

func NewCabinService(db Querier, logger *slog.Logger) *CabinService {
	return &CabinService{db: db, logger: logger}
}

var _ usecase.CabinService = (*CabinService)(nil)

const selectCabins = `
SELECT id, name, max_capacity, regular_price, discount, description, image, created_at, updated_at
FROM cabins
ORDER BY name`

const selectCabinByID = `
SELECT id, name, max_capacity, regular_price, discount, description, image, created_at, updated_at
FROM cabins
WHERE id = $1`

const selectCabinPrice = `
SELECT regular_price, discount
FROM cabins
WHERE id = $1`

func (s *CabinService) GetCabins(ctx context.Context) result.Result[[]cabin.Cabin] {
	rows, err := s.db.Query(ctx, selectCabins)
	if err != nil {
		logQueryError(s.logger, "cabins.list", err)
		return result.Err[[]cabin.Cabin](result.FromException(err, result.CodeCabinsLoadError, "errors.cabinsLoad", 500))
	}
	cabinRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[cabinRow])
	if err != nil {
		logQueryError(s.logger, "cabins.list", err)
		return result.Err[[]cabin.Cabin](result.FromException(err, result.CodeCabinsLoadError, "errors.cabinsLoad", 500))
	}

	cabins := make([]cabin.Cabin, len(cabinRows))
	for i, row := range cabinRows {
		cabins[i] = toCabin(row)
	}
	return result.Ok(cabins)
}

func (s *CabinService) GetCabin(ctx context.Context, id int64) result.Result[cabin.Cabin] {
	rows, err := s.db.Query(ctx, selectCabinByID, id)
	if err != nil {
		logQueryError(s.logger, "cabins.get", err)
		return result.Err[cabin.Cabin](result.FromException(err, result.CodeCabinLoadError, "errors.cabinLoad", 500))
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[cabinRow])
	if err != nil {
		if errs.Is(err, pgx.ErrNoRows) {
			return result.Err[cabin.Cabin](result.NewAppError(result.CodeCabinNotFound, "errors.cabinNotFound", result.WithStatus(404)))
		}
		logQueryError(s.logger, "cabins.get", err)
		return result.Err[cabin.Cabin](result.FromException(err, result.CodeCabinLoadError, "errors.cabinLoad", 500))
	}
	return result.Ok(toCabin(row))
}

func (s *CabinService) GetCabinPrice(ctx context.Context, id int64) result.Result[cabin.Price] {
	rows, err := s.db.Query(ctx, selectCabinPrice, id)
	if err != nil {
		logQueryError(s.logger, "cabins.price", err)
		return result.Err[cabin.Price](result.FromException(err, result.CodeCabinLoadError, "errors.cabinLoad", 500))
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[cabinPriceRow])
	if err != nil {
		if errs.Is(err, pgx.ErrNoRows) {
			return result.Err[cabin.Price](result.NewAppError(result.CodeCabinNotFound, "errors.cabinNotFound", result.WithStatus(404)))
		}
		logQueryError(s.logger, "cabins.price", err)
		return result.Err[cabin.Price](result.FromException(err, result.CodeCabinLoadError, "errors.cabinLoad", 500))
	}
	return result.Ok(cabin.Price{RegularPrice: row.RegularPrice, Discount: row.Discount})
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
