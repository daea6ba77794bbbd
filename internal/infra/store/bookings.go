package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wildhaven/internal/domain/booking"
	"wildhaven/internal/pkg/errs"
	"wildhaven/internal/pkg/result"
	"wildhaven/internal/usecase"

	"github.com/jackc/pgx/v5"
)

type BookingService struct {
	db     Querier
	logger *slog.Logger
}

func NewBookingService(db Querier, logger *slog.Logger) *BookingService {
	return &BookingService{db: db, logger: logger}
}

var _ usecase.BookingService = (*BookingService)(nil)

const bookingColumns = `id, guest_id, cabin_id, start_date, end_date, num_guests,
cabin_price, extras_price, total_price, is_paid, has_breakfast, observations, status, created_at`

func (s *BookingService) ListByGuest(ctx context.Context, guestID int64) result.Result[[]usecase.BookingListItem] {
	rows, err := s.db.Query(ctx, `
SELECT b.id, b.created_at, b.start_date, b.end_date, b.num_guests, b.total_price,
       b.guest_id, b.cabin_id, c.name AS cabin_name, c.image AS cabin_image
FROM bookings b
JOIN cabins c ON c.id = b.cabin_id
WHERE b.guest_id = $1
ORDER BY b.start_date`, guestID)
	if err != nil {
		logQueryError(s.logger, "bookings.listByGuest", err)
		return result.Err[[]usecase.BookingListItem](result.FromException(err, result.CodeBookingsLoadError, "errors.bookingsLoad", 500))
	}
	listRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[bookingListRow])
	if err != nil {
		logQueryError(s.logger, "bookings.listByGuest", err)
		return result.Err[[]usecase.BookingListItem](result.FromException(err, result.CodeBookingsLoadError, "errors.bookingsLoad", 500))
	}

	items := make([]usecase.BookingListItem, len(listRows))
	for i, row := range listRows {
		items[i] = toBookingListItem(row)
	}
	return result.Ok(items)
}

func (s *BookingService) GetBooking(ctx context.Context, id int64) result.Result[*booking.Booking] {
	rows, err := s.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		logQueryError(s.logger, "bookings.get", err)
		return result.Err[*booking.Booking](result.FromException(err, result.CodeBookingsLoadError, "errors.bookingsLoad", 500))
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[bookingRow])
	if err != nil {
		if errs.Is(err, pgx.ErrNoRows) {
			return result.Err[*booking.Booking](result.NewAppError(result.CodeBookingNotFound, "errors.bookingNotFound", result.WithStatus(404)))
		}
		logQueryError(s.logger, "bookings.get", err)
		return result.Err[*booking.Booking](result.FromException(err, result.CodeBookingsLoadError, "errors.bookingsLoad", 500))
	}
	b, err := toBooking(row)
	if err != nil {
		logQueryError(s.logger, "bookings.get", err)
		return result.Err[*booking.Booking](result.FromException(err, result.CodeBookingsLoadError, "errors.bookingsLoad", 500))
	}
	return result.Ok(b)
}

func (s *BookingService) CreateBooking(ctx context.Context, b *booking.Booking) result.Result[*booking.Booking] {
	rows, err := s.db.Query(ctx, `
INSERT INTO bookings (guest_id, cabin_id, start_date, end_date, num_guests,
                      cabin_price, extras_price, total_price, is_paid, has_breakfast,
                      observations, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING `+bookingColumns,
		b.GuestID(), b.CabinID(), b.Stay().Start(), b.Stay().End(), b.NumGuests(),
		b.CabinPrice(), b.ExtrasPrice(), b.TotalPrice(), b.IsPaid(), b.HasBreakfast(),
		b.Observations().String(), b.Status().String())
	if err != nil {
		logQueryError(s.logger, "bookings.create", err)
		return result.Err[*booking.Booking](result.FromException(err, result.CodeBookingCreateError, "errors.bookingCreate", 500))
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[bookingRow])
	if err != nil {
		logQueryError(s.logger, "bookings.create", err)
		return result.Err[*booking.Booking](result.FromException(err, result.CodeBookingCreateError, "errors.bookingCreate", 500))
	}
	created, err := toBooking(row)
	if err != nil {
		logQueryError(s.logger, "bookings.create", err)
		return result.Err[*booking.Booking](result.FromException(err, result.CodeBookingCreateError, "errors.bookingCreate", 500))
	}
	return result.Ok(created)
}

func (s *BookingService) UpdateBooking(ctx context.Context, id int64, patch usecase.BookingUpdatePatch) result.Result[*booking.Booking] {
	var assignments []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.NumGuests != nil {
		add("num_guests", *patch.NumGuests)
	}
	if patch.Observations != nil {
		add("observations", *patch.Observations)
	}
	if len(assignments) == 0 {
		return s.GetBooking(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
UPDATE bookings SET %s
WHERE id = $%d
RETURNING `+bookingColumns, strings.Join(assignments, ", "), len(args))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		logQueryError(s.logger, "bookings.update", err)
		return result.Err[*booking.Booking](result.FromException(err, result.CodeBookingUpdateError, "errors.bookingUpdate", 500))
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[bookingRow])
	if err != nil {
		if errs.Is(err, pgx.ErrNoRows) {
			return result.Err[*booking.Booking](result.NewAppError(result.CodeBookingNotFound, "errors.bookingNotFound", result.WithStatus(404)))
		}
		logQueryError(s.logger, "bookings.update", err)
		return result.Err[*booking.Booking](result.FromException(err, result.CodeBookingUpdateError, "errors.bookingUpdate", 500))
	}
	updated, err := toBooking(row)
	if err != nil {
		logQueryError(s.logger, "bookings.update", err)
		return result.Err[*booking.Booking](result.FromException(err, result.CodeBookingUpdateError, "errors.bookingUpdate", 500))
	}
	return result.Ok(updated)
}

func (s *BookingService) DeleteBooking(ctx context.Context, id int64) result.Result[result.Unit] {
	tag, err := s.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		logQueryError(s.logger, "bookings.delete", err)
		return result.Err[result.Unit](result.FromException(err, result.CodeBookingDeleteError, "errors.bookingDelete", 500))
	}
	if tag.RowsAffected() == 0 {
		return result.Err[result.Unit](result.NewAppError(result.CodeBookingNotFound, "errors.bookingNotFound", result.WithStatus(404)))
	}
	return result.Ok(result.Unit{})
}

// ListStaysForAvailability fetches stays for bookings that either start on or
// after from, or are currently checked-in (in-progress stays that started
// earlier still block dates).
func (s *BookingService) ListStaysForAvailability(ctx context.Context, cabinID int64, from time.Time) result.Result[[]booking.Stay] {
	rows, err := s.db.Query(ctx, `
SELECT start_date, end_date
FROM bookings
WHERE cabin_id = $1
  AND (start_date >= $2 OR status = 'checked-in')`, cabinID, from)
	if err != nil {
		logQueryError(s.logger, "bookings.availability", err)
		return result.Err[[]booking.Stay](result.FromException(err, result.CodeBookingsLoadError, "errors.bookingsLoad", 500))
	}
	stayRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[stayRow])
	if err != nil {
		logQueryError(s.logger, "bookings.availability", err)
		return result.Err[[]booking.Stay](result.FromException(err, result.CodeBookingsLoadError, "errors.bookingsLoad", 500))
	}

	stays := make([]booking.Stay, 0, len(stayRows))
	for _, row := range stayRows {
		stay, err := toStay(row)
		if err != nil {
			logQueryError(s.logger, "bookings.availability", err)
			return result.Err[[]booking.Stay](result.FromException(err, result.CodeBookingsLoadError, "errors.bookingsLoad", 500))
		}
		stays = append(stays, stay)
	}
	return result.Ok(stays)
}
