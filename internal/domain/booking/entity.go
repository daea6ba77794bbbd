package booking

import "time"

type Booking struct {
	id          int64
	guestID     int64
	cabinID     int64
	stay        Stay
	numGuests   int
	cabinPrice  float64
	extrasPrice float64
	totalPrice  float64
	isPaid      bool
	hasBreakfast bool
	observations Observations
	status      Status
	createdAt   time.Time
}

// NewBooking builds a guest-created booking with the lifecycle defaults:
// status unconfirmed, unpaid, no breakfast, extras at zero, total initialized
// to the cabin price component only.
func NewBooking(guestID, cabinID int64, stay Stay, numGuests int, cabinPrice float64, observations Observations) *Booking {
	return &Booking{
		guestID:      guestID,
		cabinID:      cabinID,
		stay:         stay,
		numGuests:    numGuests,
		cabinPrice:   cabinPrice,
		extrasPrice:  0,
		totalPrice:   cabinPrice,
		isPaid:       false,
		hasBreakfast: false,
		observations: observations,
		status:       StatusUnconfirmed,
	}
}

func Reconstruct(
	id, guestID, cabinID int64,
	stay Stay,
	numGuests int,
	cabinPrice, extrasPrice, totalPrice float64,
	isPaid, hasBreakfast bool,
	observations Observations,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		guestID:      guestID,
		cabinID:      cabinID,
		stay:         stay,
		numGuests:    numGuests,
		cabinPrice:   cabinPrice,
		extrasPrice:  extrasPrice,
		totalPrice:   totalPrice,
		isPaid:       isPaid,
		hasBreakfast: hasBreakfast,
		observations: observations,
		status:       status,
		createdAt:    createdAt,
	}
}

func (b *Booking) ID() int64                  { return b.id }
func (b *Booking) GuestID() int64             { return b.guestID }
func (b *Booking) CabinID() int64             { return b.cabinID }
func (b *Booking) Stay() Stay                 { return b.stay }
func (b *Booking) NumGuests() int             { return b.numGuests }
func (b *Booking) CabinPrice() float64        { return b.cabinPrice }
func (b *Booking) ExtrasPrice() float64       { return b.extrasPrice }
func (b *Booking) TotalPrice() float64        { return b.totalPrice }
func (b *Booking) IsPaid() bool               { return b.isPaid }
func (b *Booking) HasBreakfast() bool         { return b.hasBreakfast }
func (b *Booking) Observations() Observations { return b.observations }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }

func (b *Booking) IsCheckedIn() bool {
	return b.status == StatusCheckedIn
}
