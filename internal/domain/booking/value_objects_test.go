//go:build unit

package booking_test

import (
	"testing"
	"time"

	"wildhaven/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStay(t *testing.T) {
	t.Run("normalizes both boundaries to UTC midnight", func(t *testing.T) {
		loc := time.FixedZone("CEST", 2*60*60)
		start := time.Date(2024, 5, 1, 14, 30, 0, 0, loc)
		end := time.Date(2024, 5, 4, 9, 15, 0, 0, loc)

		stay, err := booking.NewStay(start, end)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), stay.Start())
		assert.Equal(t, time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC), stay.End())
	})

	t.Run("single day stay is valid", func(t *testing.T) {
		day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		stay, err := booking.NewStay(day, day)
		require.NoError(t, err)
		assert.Equal(t, 0, stay.NumNights())
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := booking.NewStay(
			time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		)
		assert.ErrorIs(t, err, booking.ErrInvalidStay)
	})
}

func TestStayDays(t *testing.T) {
	t.Run("expands to every day in the inclusive range", func(t *testing.T) {
		stay, err := booking.NewStay(
			time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		assert.Equal(t, []time.Time{
			time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		}, stay.Days())
	})

	t.Run("single day stay expands to one day", func(t *testing.T) {
		day := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
		stay, err := booking.NewStay(day, day)
		require.NoError(t, err)

		assert.Equal(t, []time.Time{day}, stay.Days())
	})

	t.Run("spans a month boundary", func(t *testing.T) {
		stay, err := booking.NewStay(
			time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		days := stay.Days()
		require.Len(t, days, 2)
		assert.Equal(t, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC), days[0])
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), days[1])
	})
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    booking.Status
		wantErr bool
	}{
		{name: "unconfirmed", raw: "unconfirmed", want: booking.StatusUnconfirmed},
		{name: "checked in", raw: "checked-in", want: booking.StatusCheckedIn},
		{name: "checked out", raw: "checked-out", want: booking.StatusCheckedOut},
		{name: "unknown value", raw: "cancelled", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, err := booking.ParseStatus(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, status)
		})
	}
}
