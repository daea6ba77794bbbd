package usecase

import (
	"context"
	"time"

	"wildhaven/internal/pkg/clock"
	"wildhaven/internal/pkg/result"
)

// AvailabilityEngine derives the set of unavailable calendar dates for a cabin
// from overlapping reservation intervals. It feeds a date-picker collaborator
// and does no formatting of its own.
type AvailabilityEngine interface {
	// BookedDates returns a flat, unordered sequence of the days occupied by
	// bookings that start on/after today (UTC midnight) or are currently
	// checked-in. Days covered by overlapping bookings appear once.
	BookedDates(ctx context.Context, cabinID int64) result.Result[[]time.Time]
}

type availabilityEngineImpl struct {
	bookings BookingService
	clock    clock.Clock
}

func NewAvailabilityEngine(bookings BookingService, clk clock.Clock) AvailabilityEngine {
	return &availabilityEngineImpl{bookings: bookings, clock: clk}
}

func (e *availabilityEngineImpl) BookedDates(ctx context.Context, cabinID int64) result.Result[[]time.Time] {
	now := e.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	staysRes := e.bookings.ListStaysForAvailability(ctx, cabinID, today)
	if !staysRes.OK() {
		return result.Err[[]time.Time](staysRes.Err())
	}

	seen := make(map[time.Time]struct{})
	var days []time.Time
	for _, stay := range staysRes.Value() {
		for _, day := range stay.Days() {
			if _, dup := seen[day]; dup {
				continue
			}
			seen[day] = struct{}{}
			days = append(days, day)
		}
	}
	return result.Ok(days)
}
