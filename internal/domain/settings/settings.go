// Package settings holds the shared site settings record. Settings is a
// singleton: exactly one row ever exists, and every read or update must return
// exactly one object. An adapter handing back a collection here is a contract
// violation.
package settings

type Settings struct {
	ID                  int64
	MinBookingLength    int
	MaxBookingLength    int
	MaxGuestsPerBooking int
	BreakfastPrice      float64
}

// UpdateInput is partial; only changed (non-nil) fields are sent to the
// adapter.
type UpdateInput struct {
	MinBookingLength    *int
	MaxBookingLength    *int
	MaxGuestsPerBooking *int
	BreakfastPrice      *float64
}

func (in UpdateInput) IsEmpty() bool {
	return in.MinBookingLength == nil &&
		in.MaxBookingLength == nil &&
		in.MaxGuestsPerBooking == nil &&
		in.BreakfastPrice == nil
}
