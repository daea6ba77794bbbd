package usecase

import (
	"context"
	"strconv"
	"time"

	"wildhaven/internal/domain/booking"
	"wildhaven/internal/pkg/result"
)

// CreateBookingInput carries the booking form data. NumGuests arrives as the
// raw form value and is coerced to a number here; Observations longer than the
// cap are truncated, not rejected.
type CreateBookingInput struct {
	CabinID      int64
	StartDate    time.Time
	EndDate      time.Time
	CabinPrice   float64
	NumGuests    string
	Observations string
}

type UpdateBookingInput struct {
	NumGuests    string
	Observations string
}

// BookingCommands covers the guest-facing booking mutations. Update and Delete
// enforce ownership: the acting guest's full, current booking list is fetched
// and the target id checked for membership before any mutation. A miss fails
// with NOT_ALLOWED, deliberately indistinguishable from the id not existing at
// all, so booking existence never leaks to non-owners.
type BookingCommands interface {
	Create(ctx context.Context, guestID int64, input CreateBookingInput) result.Result[*booking.Booking]
	Update(ctx context.Context, guestID, bookingID int64, input UpdateBookingInput) result.Result[*booking.Booking]
	Delete(ctx context.Context, guestID, bookingID int64) result.Result[result.Unit]
}

type BookingQueries interface {
	ListByGuest(ctx context.Context, guestID int64) result.Result[[]BookingListItem]
	GetBooking(ctx context.Context, id int64) result.Result[*booking.Booking]
}

type bookingUseCasesImpl struct {
	bookings BookingService
}

func NewBookingCommands(bookings BookingService) BookingCommands {
	return &bookingUseCasesImpl{bookings: bookings}
}

func NewBookingQueries(bookings BookingService) BookingQueries {
	return &bookingUseCasesImpl{bookings: bookings}
}

func (u *bookingUseCasesImpl) Create(ctx context.Context, guestID int64, input CreateBookingInput) result.Result[*booking.Booking] {
	numGuests, appErr := coerceNumGuests(input.NumGuests)
	if appErr != nil {
		return result.Err[*booking.Booking](appErr)
	}

	stay, err := booking.NewStay(input.StartDate, input.EndDate)
	if err != nil {
		return result.Err[*booking.Booking](result.Validation(map[string][]string{
			"startDate": {err.Error()},
		}))
	}

	b := booking.NewBooking(
		guestID,
		input.CabinID,
		stay,
		numGuests,
		input.CabinPrice,
		booking.NewObservations(input.Observations),
	)
	return u.bookings.CreateBooking(ctx, b)
}

func (u *bookingUseCasesImpl) Update(ctx context.Context, guestID, bookingID int64, input UpdateBookingInput) result.Result[*booking.Booking] {
	if appErr := u.authorizeOwnership(ctx, guestID, bookingID); appErr != nil {
		return result.Err[*booking.Booking](appErr)
	}

	numGuests, appErr := coerceNumGuests(input.NumGuests)
	if appErr != nil {
		return result.Err[*booking.Booking](appErr)
	}

	observations := booking.NewObservations(input.Observations).String()
	return u.bookings.UpdateBooking(ctx, bookingID, BookingUpdatePatch{
		NumGuests:    &numGuests,
		Observations: &observations,
	})
}

func (u *bookingUseCasesImpl) Delete(ctx context.Context, guestID, bookingID int64) result.Result[result.Unit] {
	if appErr := u.authorizeOwnership(ctx, guestID, bookingID); appErr != nil {
		return result.Err[result.Unit](appErr)
	}
	return u.bookings.DeleteBooking(ctx, bookingID)
}

func (u *bookingUseCasesImpl) ListByGuest(ctx context.Context, guestID int64) result.Result[[]BookingListItem] {
	return u.bookings.ListByGuest(ctx, guestID)
}

func (u *bookingUseCasesImpl) GetBooking(ctx context.Context, id int64) result.Result[*booking.Booking] {
	return u.bookings.GetBooking(ctx, id)
}

// authorizeOwnership returns nil only when bookingID belongs to guestID's own
// booking list.
func (u *bookingUseCasesImpl) authorizeOwnership(ctx context.Context, guestID, bookingID int64) *result.AppError {
	listRes := u.bookings.ListByGuest(ctx, guestID)
	if !listRes.OK() {
		return listRes.Err()
	}
	for _, item := range listRes.Value() {
		if item.ID == bookingID {
			return nil
		}
	}
	return result.NewAppError(
		result.CodeNotAllowed,
		"errors.notAllowed",
		result.WithStatus(403),
		result.WithDetails("you are not allowed to modify this booking"),
	)
}

func coerceNumGuests(raw string) (int, *result.AppError) {
	numGuests, err := strconv.Atoi(raw)
	if err != nil || numGuests < 1 {
		return 0, result.Validation(map[string][]string{
			"numGuests": {"guest count must be a positive number"},
		})
	}
	return numGuests, nil
}
