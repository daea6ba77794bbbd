package booking

import (
	"errors"
	"time"
)

var ErrInvalidStay = errors.New("stay end date must not be before start date")

// MaxObservationsLength caps free-text guest notes, counted in characters.
// Longer input is truncated, not rejected.
const MaxObservationsLength = 1000

type Observations struct {
	value string
}

func NewObservations(value string) Observations {
	// Truncate on rune boundaries; a byte cut could split a multi-byte
	// character and leave invalid UTF-8 behind.
	if runes := []rune(value); len(runes) > MaxObservationsLength {
		value = string(runes[:MaxObservationsLength])
	}
	return Observations{value: value}
}

func (o Observations) String() string {
	return o.value
}

// Stay is an inclusive calendar interval: a booking for [start, end] occupies
// the cabin on both boundary days.
type Stay struct {
	start time.Time
	end   time.Time
}

func NewStay(start, end time.Time) (Stay, error) {
	start = atUTCMidnight(start)
	end = atUTCMidnight(end)
	if end.Before(start) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{start: start, end: end}, nil
}

func (s Stay) Start() time.Time {
	return s.start
}

func (s Stay) End() time.Time {
	return s.end
}

func (s Stay) NumNights() int {
	return int(s.end.Sub(s.start) / (24 * time.Hour))
}

// Days expands the stay to every calendar day in the inclusive range.
func (s Stay) Days() []time.Time {
	days := make([]time.Time, 0, s.NumNights()+1)
	for d := s.start; !d.After(s.end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func atUTCMidnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
