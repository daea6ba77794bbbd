//go:build unit

package builder

import (
	"time"

	"wildhaven/internal/domain/booking"
	"wildhaven/internal/usecase"
)

type BookingBuilder struct {
	ID           int64
	GuestID      int64
	CabinID      int64
	StartDate    time.Time
	EndDate      time.Time
	NumGuests    int
	CabinPrice   float64
	ExtrasPrice  float64
	TotalPrice   float64
	IsPaid       bool
	HasBreakfast bool
	Observations string
	Status       booking.Status
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           1,
		GuestID:      10,
		CabinID:      7,
		StartDate:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC),
		NumGuests:    2,
		CabinPrice:   450,
		ExtrasPrice:  0,
		TotalPrice:   450,
		IsPaid:       false,
		HasBreakfast: false,
		Observations: "late arrival",
		Status:       booking.StatusUnconfirmed,
		CreatedAt:    time.Date(2024, 4, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	stay, err := booking.NewStay(b.StartDate, b.EndDate)
	if err != nil {
		panic(err)
	}
	return booking.Reconstruct(
		b.ID, b.GuestID, b.CabinID,
		stay,
		b.NumGuests,
		b.CabinPrice, b.ExtrasPrice, b.TotalPrice,
		b.IsPaid, b.HasBreakfast,
		booking.NewObservations(b.Observations),
		b.Status,
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildListItem() usecase.BookingListItem {
	stay, err := booking.NewStay(b.StartDate, b.EndDate)
	if err != nil {
		panic(err)
	}
	return usecase.BookingListItem{
		ID:         b.ID,
		CreatedAt:  b.CreatedAt,
		StartDate:  stay.Start(),
		EndDate:    stay.End(),
		NumNights:  stay.NumNights(),
		NumGuests:  b.NumGuests,
		TotalPrice: b.TotalPrice,
		GuestID:    b.GuestID,
		CabinID:    b.CabinID,
		CabinName:  "001",
		CabinImage: "https://example.com/cabins/001.jpg",
	}
}

func (b *BookingBuilder) BuildCreateInput() usecase.CreateBookingInput {
	return usecase.CreateBookingInput{
		CabinID:      b.CabinID,
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		CabinPrice:   b.CabinPrice,
		NumGuests:    "2",
		Observations: b.Observations,
	}
}
