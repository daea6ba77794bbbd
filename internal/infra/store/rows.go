package store

import (
	"time"

	"wildhaven/internal/domain/booking"
	"wildhaven/internal/domain/cabin"
	"wildhaven/internal/domain/guest"
	"wildhaven/internal/domain/settings"
	"wildhaven/internal/pkg/ptr"
	"wildhaven/internal/usecase"
)

// Provider row shapes. Field names follow the provider's column names; the
// converters below are the anti-corruption mapping to the domain shape.

type cabinRow struct {
	ID           int64      `db:"id"`
	Name         string     `db:"name"`
	MaxCapacity  int32      `db:"max_capacity"`
	RegularPrice float64    `db:"regular_price"`
	Discount     float64    `db:"discount"`
	Description  *string    `db:"description"`
	Image        string     `db:"image"`
	CreatedAt    *time.Time `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

type cabinPriceRow struct {
	RegularPrice float64 `db:"regular_price"`
	Discount     float64 `db:"discount"`
}

type settingsRow struct {
	ID                  int64   `db:"id"`
	MinBookingLength    int32   `db:"min_booking_length"`
	MaxBookingLength    int32   `db:"max_booking_length"`
	MaxGuestsPerBooking int32   `db:"max_guests_per_booking"`
	BreakfastPrice      float64 `db:"breakfast_price"`
}

type guestRow struct {
	ID          int64      `db:"id"`
	FullName    string     `db:"full_name"`
	Email       string     `db:"email"`
	NationalID  *string    `db:"national_id"`
	Nationality *string    `db:"nationality"`
	CountryFlag *string    `db:"country_flag"`
	CreatedAt   *time.Time `db:"created_at"`
}

type bookingRow struct {
	ID           int64     `db:"id"`
	GuestID      int64     `db:"guest_id"`
	CabinID      int64     `db:"cabin_id"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
	NumGuests    int32     `db:"num_guests"`
	CabinPrice   float64   `db:"cabin_price"`
	ExtrasPrice  float64   `db:"extras_price"`
	TotalPrice   float64   `db:"total_price"`
	IsPaid       bool      `db:"is_paid"`
	HasBreakfast bool      `db:"has_breakfast"`
	Observations *string   `db:"observations"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

type bookingListRow struct {
	ID         int64     `db:"id"`
	CreatedAt  time.Time `db:"created_at"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	NumGuests  int32     `db:"num_guests"`
	TotalPrice float64   `db:"total_price"`
	GuestID    int64     `db:"guest_id"`
	CabinID    int64     `db:"cabin_id"`
	CabinName  string    `db:"cabin_name"`
	CabinImage string    `db:"cabin_image"`
}

type stayRow struct {
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
}

func toCabin(row cabinRow) cabin.Cabin {
	return cabin.Cabin{
		ID:           row.ID,
		Name:         row.Name,
		MaxCapacity:  int(row.MaxCapacity),
		RegularPrice: row.RegularPrice,
		Discount:     row.Discount,
		Description:  ptr.Coalesce(row.Description, ""),
		Image:        row.Image,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func toSettings(row settingsRow) settings.Settings {
	return settings.Settings{
		ID:                  row.ID,
		MinBookingLength:    int(row.MinBookingLength),
		MaxBookingLength:    int(row.MaxBookingLength),
		MaxGuestsPerBooking: int(row.MaxGuestsPerBooking),
		BreakfastPrice:      row.BreakfastPrice,
	}
}

func toGuest(row guestRow) guest.Guest {
	return guest.Guest{
		ID:          row.ID,
		FullName:    row.FullName,
		Email:       row.Email,
		NationalID:  ptr.Coalesce(row.NationalID, ""),
		Nationality: ptr.Coalesce(row.Nationality, ""),
		CountryFlag: ptr.Coalesce(row.CountryFlag, ""),
		CreatedAt:   row.CreatedAt,
	}
}

func toBooking(row bookingRow) (*booking.Booking, error) {
	stay, err := booking.NewStay(row.StartDate, row.EndDate)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		row.ID,
		row.GuestID,
		row.CabinID,
		stay,
		int(row.NumGuests),
		row.CabinPrice,
		row.ExtrasPrice,
		row.TotalPrice,
		row.IsPaid,
		row.HasBreakfast,
		booking.NewObservations(ptr.Coalesce(row.Observations, "")),
		status,
		row.CreatedAt,
	), nil
}

func toBookingListItem(row bookingListRow) usecase.BookingListItem {
	numNights := int(row.EndDate.Sub(row.StartDate) / (24 * time.Hour))
	return usecase.BookingListItem{
		ID:         row.ID,
		CreatedAt:  row.CreatedAt,
		StartDate:  row.StartDate,
		EndDate:    row.EndDate,
		NumNights:  numNights,
		NumGuests:  int(row.NumGuests),
		TotalPrice: row.TotalPrice,
		GuestID:    row.GuestID,
		CabinID:    row.CabinID,
		CabinName:  row.CabinName,
		CabinImage: row.CabinImage,
	}
}

func toStay(row stayRow) (booking.Stay, error) {
	return booking.NewStay(row.StartDate, row.EndDate)
}
