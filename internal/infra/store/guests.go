package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"wildhaven/internal/domain/guest"
	"wildhaven/internal/pkg/errs"
	"wildhaven/internal/pkg/result"
	"wildhaven/internal/usecase"

	"github.com/jackc/pgx/v5"
)

type GuestService struct {
	db     Querier
	logger *slog.Logger
}

func NewGuestService(db Querier, logger *slog.Logger) *GuestService {
	return &GuestService{db: db, logger: logger}
}

var _ usecase.GuestService = (*GuestService)(nil)

const guestColumns = `id, full_name, email, national_id, nationality, country_flag, created_at`

// GetByEmail returns nil for an unknown email; guests are created lazily by
// the sign-in callback.
func (s *GuestService) GetByEmail(ctx context.Context, email string) result.Result[*guest.Guest] {
	rows, err := s.db.Query(ctx, `SELECT `+guestColumns+` FROM guests WHERE email = $1`, email)
	if err != nil {
		logQueryError(s.logger, "guests.getByEmail", err)
		return result.Err[*guest.Guest](result.FromException(err, result.CodeGuestLoadError, "errors.guestLoad", 500))
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[guestRow])
	if err != nil {
		if errs.Is(err, pgx.ErrNoRows) {
			return result.Ok[*guest.Guest](nil)
		}
		logQueryError(s.logger, "guests.getByEmail", err)
		return result.Err[*guest.Guest](result.FromException(err, result.CodeGuestLoadError, "errors.guestLoad", 500))
	}
	g := toGuest(row)
	return result.Ok(&g)
}

func (s *GuestService) Create(ctx context.Context, input guest.CreateInput) result.Result[guest.Guest] {
	rows, err := s.db.Query(ctx, `
INSERT INTO guests (full_name, email)
VALUES ($1, $2)
RETURNING `+guestColumns, input.FullName, input.Email)
	if err != nil {
		logQueryError(s.logger, "guests.create", err)
		return result.Err[guest.Guest](result.FromException(err, result.CodeGuestCreateError, "errors.guestCreate", 500))
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[guestRow])
	if err != nil {
		logQueryError(s.logger, "guests.create", err)
		return result.Err[guest.Guest](result.FromException(err, result.CodeGuestCreateError, "errors.guestCreate", 500))
	}
	return result.Ok(toGuest(row))
}

func (s *GuestService) Update(ctx context.Context, id int64, input guest.UpdateInput) result.Result[guest.Guest] {
	assignments, args := guestAssignments(input)
	if len(assignments) == 0 {
		return result.Err[guest.Guest](result.NewAppError(result.CodeGuestUpdateError, "errors.guestUpdate", result.WithDetails("empty update"), result.WithStatus(400)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`
UPDATE guests SET %s
WHERE id = $%d
RETURNING `+guestColumns, strings.Join(assignments, ", "), len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		logQueryError(s.logger, "guests.update", err)
		return result.Err[guest.Guest](result.FromException(err, result.CodeGuestUpdateError, "errors.guestUpdate", 500))
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[guestRow])
	if err != nil {
		logQueryError(s.logger, "guests.update", err)
		return result.Err[guest.Guest](result.FromException(err, result.CodeGuestUpdateError, "errors.guestUpdate", 500))
	}
	return result.Ok(toGuest(row))
}

func guestAssignments(input guest.UpdateInput) ([]string, []any) {
	var assignments []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.FullName != nil {
		add("full_name", *input.FullName)
	}
	if input.NationalID != nil {
		add("national_id", *input.NationalID)
	}
	if input.Nationality != nil {
		add("nationality", *input.Nationality)
	}
	if input.CountryFlag != nil {
		add("country_flag", *input.CountryFlag)
	}
	return assignments, args
}
