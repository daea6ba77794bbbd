package usecase

import (
	"context"

	"wildhaven/internal/domain/guest"
	"wildhaven/internal/pkg/result"
)

// UpdateProfileInput carries the profile form fields. Nationality arrives as
// the combined "<country>%<flag>" value the country picker produces.
type UpdateProfileInput struct {
	NationalID  string
	Nationality string
}

type GuestCommands interface {
	// UpdateProfile validates the national identifier and splits the combined
	// nationality field before delegating. Pattern failures surface as a
	// field-level validation error, never a generic failure.
	UpdateProfile(ctx context.Context, guestID int64, input UpdateProfileInput) result.Result[guest.Guest]
	CreateGuest(ctx context.Context, input guest.CreateInput) result.Result[guest.Guest]
}

type GuestQueries interface {
	GetGuest(ctx context.Context, email string) result.Result[*guest.Guest]
	// GetCurrentGuest resolves the signed-in user's guest record via the
	// session email. Both a signed-out session and a missing guest record
	// yield nil.
	GetCurrentGuest(ctx context.Context) result.Result[*guest.Guest]
}

type guestUseCasesImpl struct {
	guests GuestService
	users  UserService
}

func NewGuestCommands(guests GuestService) GuestCommands {
	return &guestUseCasesImpl{guests: guests}
}

func NewGuestQueries(guests GuestService, users UserService) GuestQueries {
	return &guestUseCasesImpl{guests: guests, users: users}
}

func (u *guestUseCasesImpl) UpdateProfile(ctx context.Context, guestID int64, input UpdateProfileInput) result.Result[guest.Guest] {
	nationalID, err := guest.NewNationalID(input.NationalID)
	if err != nil {
		return result.Err[guest.Guest](result.Validation(map[string][]string{
			"nationalID": {"please provide a valid national ID"},
		}))
	}

	nationality, err := guest.ParseNationality(input.Nationality)
	if err != nil {
		return result.Err[guest.Guest](result.Validation(map[string][]string{
			"nationality": {"please select a nationality"},
		}))
	}

	id := nationalID.String()
	country := nationality.Country()
	flag := nationality.Flag()
	return u.guests.Update(ctx, guestID, guest.UpdateInput{
		NationalID:  &id,
		Nationality: &country,
		CountryFlag: &flag,
	})
}

func (u *guestUseCasesImpl) CreateGuest(ctx context.Context, input guest.CreateInput) result.Result[guest.Guest] {
	return u.guests.Create(ctx, input)
}

func (u *guestUseCasesImpl) GetGuest(ctx context.Context, email string) result.Result[*guest.Guest] {
	return u.guests.GetByEmail(ctx, email)
}

func (u *guestUseCasesImpl) GetCurrentGuest(ctx context.Context) result.Result[*guest.Guest] {
	userRes := u.users.GetCurrentUser(ctx)
	if !userRes.OK() {
		return result.Err[*guest.Guest](userRes.Err())
	}
	profile := userRes.Value()
	if profile == nil {
		return result.Ok[*guest.Guest](nil)
	}
	return u.guests.GetByEmail(ctx, profile.Email)
}
