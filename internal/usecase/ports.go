package usecase

import (
	"context"
	"time"

	"wildhaven/internal/domain/booking"
	"wildhaven/internal/domain/cabin"
	"wildhaven/internal/domain/guest"
	"wildhaven/internal/domain/session"
	"wildhaven/internal/domain/settings"
	"wildhaven/internal/pkg/result"
)

// Service ports. Each port expresses what a domain object can do, independent
// of storage technology; concrete adapters live under internal/infra and are
// bound by the factory at composition time. Use cases are the only callers.
//
// Every operation returns a Result; failure never travels as a panic.
// Operations a deployment does not support return a NOT_IMPLEMENTED failure.

type CabinService interface {
	GetCabins(ctx context.Context) result.Result[[]cabin.Cabin]
	GetCabin(ctx context.Context, id int64) result.Result[cabin.Cabin]
	GetCabinPrice(ctx context.Context, id int64) result.Result[cabin.Price]
	CreateCabin(ctx context.Context, input cabin.CreateInput) result.Result[cabin.Cabin]
	UpdateCabin(ctx context.Context, id int64, input cabin.UpdateInput) result.Result[cabin.Cabin]
	DeleteCabin(ctx context.Context, id int64) result.Result[result.Unit]
}

// SettingsService reads and updates the singleton settings record. Both
// operations return exactly one object; an underlying response of zero or
// multiple records is a failure, never index-0 truncation.
type SettingsService interface {
	GetSettings(ctx context.Context) result.Result[settings.Settings]
	UpdateSettings(ctx context.Context, input settings.UpdateInput) result.Result[settings.Settings]
}

type UserService interface {
	Signup(ctx context.Context, input session.SignupInput) result.Result[session.UserProfile]
	// GetCurrentUser returns nil when no one is signed in; that is not an
	// error.
	GetCurrentUser(ctx context.Context) result.Result[*session.UserProfile]
	UpdateCurrentUser(ctx context.Context, input session.UpdateUserInput) result.Result[session.UserProfile]
}

type AuthService interface {
	Login(ctx context.Context, input session.LoginInput) result.Result[session.AuthSession]
	Logout(ctx context.Context) result.Result[result.Unit]
	// GetSession returns nil when signed out.
	GetSession(ctx context.Context) result.Result[*session.AuthSession]
}

// BookingListItem is the read model backing a guest's reservation list; cabin
// name and image ride along for display.
type BookingListItem struct {
	ID         int64
	CreatedAt  time.Time
	StartDate  time.Time
	EndDate    time.Time
	NumNights  int
	NumGuests  int
	TotalPrice float64
	GuestID    int64
	CabinID    int64
	CabinName  string
	CabinImage string
}

// BookingUpdatePatch is partial; nil fields are left untouched.
type BookingUpdatePatch struct {
	NumGuests    *int
	Observations *string
}

type BookingService interface {
	ListByGuest(ctx context.Context, guestID int64) result.Result[[]BookingListItem]
	GetBooking(ctx context.Context, id int64) result.Result[*booking.Booking]
	CreateBooking(ctx context.Context, b *booking.Booking) result.Result[*booking.Booking]
	UpdateBooking(ctx context.Context, id int64, patch BookingUpdatePatch) result.Result[*booking.Booking]
	DeleteBooking(ctx context.Context, id int64) result.Result[result.Unit]
	// ListStaysForAvailability returns the stay intervals of bookings for the
	// cabin that either start on/after from or are currently checked-in
	// (covers in-progress stays started earlier).
	ListStaysForAvailability(ctx context.Context, cabinID int64, from time.Time) result.Result[[]booking.Stay]
}

type GuestService interface {
	// GetByEmail returns nil when no guest record exists for the email; the
	// sign-in callback handles that case by creating one.
	GetByEmail(ctx context.Context, email string) result.Result[*guest.Guest]
	Create(ctx context.Context, input guest.CreateInput) result.Result[guest.Guest]
	Update(ctx context.Context, id int64, input guest.UpdateInput) result.Result[guest.Guest]
}
