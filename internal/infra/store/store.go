// Package store implements the service ports against the row-store provider.
// Provider row shapes stay inside this package: every adapter maps its rows to
// the domain shape before anything crosses the port boundary.
package store

import (
	"context"
	"log/slog"

	"wildhaven/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the slice of pgxpool.Pool the adapters need; tests substitute
// their own implementation.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// exactlyOne forces single-record semantics on a provider response. Zero rows
// or multiple rows are an error, never index-0 truncation.
func exactlyOne[T any](rows []T) (T, error) {
	var zero T
	switch len(rows) {
	case 1:
		return rows[0], nil
	case 0:
		return zero, errs.New("expected exactly one row, got none")
	default:
		return zero, errs.Newf("expected exactly one row, got %d", len(rows))
	}
}

func logQueryError(logger *slog.Logger, op string, err error) {
	if logger == nil {
		return
	}
	logger.Error("store query failed", slog.String("op", op), slog.Any("error", err))
}
