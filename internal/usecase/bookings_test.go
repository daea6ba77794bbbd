//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"wildhaven/internal/domain/booking"
	"wildhaven/internal/pkg/result"
	"wildhaven/internal/usecase"
	"wildhaven/tests/common/builder"
	portsmock "wildhaven/tests/mock/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockBookings *portsmock.MockBookingService
	commands     usecase.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = portsmock.NewMockBookingService(s.mockCtrl)
	s.commands = usecase.NewBookingCommands(s.mockBookings)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestCreate() {
	const guestID = int64(10)

	s.Run("builds the booking with lifecycle defaults", func() {
		input := builder.NewBookingBuilder().BuildCreateInput()

		s.mockBookings.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) result.Result[*booking.Booking] {
				s.Equal(guestID, b.GuestID())
				s.Equal(input.CabinID, b.CabinID())
				s.Equal(2, b.NumGuests())
				s.Equal(booking.StatusUnconfirmed, b.Status())
				s.False(b.IsPaid())
				s.False(b.HasBreakfast())
				s.Zero(b.ExtrasPrice())
				s.Equal(input.CabinPrice, b.TotalPrice())
				return result.Ok(b)
			})

		res := s.commands.Create(context.Background(), guestID, input)
		s.True(res.OK())
	})

	s.Run("coerces the raw guest count", func() {
		input := builder.NewBookingBuilder().BuildCreateInput()
		input.NumGuests = "4"

		s.mockBookings.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) result.Result[*booking.Booking] {
				s.Equal(4, b.NumGuests())
				return result.Ok(b)
			})

		res := s.commands.Create(context.Background(), guestID, input)
		s.True(res.OK())
	})

	s.Run("non-numeric guest count is a field validation error", func() {
		input := builder.NewBookingBuilder().BuildCreateInput()
		input.NumGuests = "many"

		res := s.commands.Create(context.Background(), guestID, input)

		s.False(res.OK())
		s.Equal(result.CodeValidationError, res.Err().Code)
		s.Contains(res.Err().ValidationErrors, "numGuests")
	})

	s.Run("zero guest count is rejected", func() {
		input := builder.NewBookingBuilder().BuildCreateInput()
		input.NumGuests = "0"

		res := s.commands.Create(context.Background(), guestID, input)

		s.False(res.OK())
		s.Equal(result.CodeValidationError, res.Err().Code)
	})

	s.Run("long observations are truncated before the adapter sees them", func() {
		input := builder.NewBookingBuilder().BuildCreateInput()
		long := make([]byte, booking.MaxObservationsLength+200)
		for i := range long {
			long[i] = 'x'
		}
		input.Observations = string(long)

		s.mockBookings.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) result.Result[*booking.Booking] {
				s.Len(b.Observations().String(), booking.MaxObservationsLength)
				return result.Ok(b)
			})

		res := s.commands.Create(context.Background(), guestID, input)
		s.True(res.OK())
	})

	s.Run("inverted stay dates are a validation error", func() {
		input := builder.NewBookingBuilder().BuildCreateInput()
		input.StartDate, input.EndDate = input.EndDate, input.StartDate.AddDate(0, 0, -1)

		res := s.commands.Create(context.Background(), guestID, input)

		s.False(res.OK())
		s.Equal(result.CodeValidationError, res.Err().Code)
	})
}

func (s *BookingCommandsTestSuite) TestUpdate() {
	const guestID, bookingID = int64(10), int64(1)

	ownList := []usecase.BookingListItem{builder.NewBookingBuilder().BuildListItem()}

	s.Run("owner can update", func() {
		s.mockBookings.EXPECT().ListByGuest(gomock.Any(), guestID).Return(result.Ok(ownList))
		s.mockBookings.EXPECT().
			UpdateBooking(gomock.Any(), bookingID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, patch usecase.BookingUpdatePatch) result.Result[*booking.Booking] {
				s.Require().NotNil(patch.NumGuests)
				s.Equal(3, *patch.NumGuests)
				s.Require().NotNil(patch.Observations)
				s.Equal("early check-in", *patch.Observations)
				return result.Ok(builder.NewBookingBuilder().BuildDomain())
			})

		res := s.commands.Update(context.Background(), guestID, bookingID, usecase.UpdateBookingInput{
			NumGuests:    "3",
			Observations: "early check-in",
		})
		s.True(res.OK())
	})

	s.Run("non-owner gets not allowed regardless of existence", func() {
		s.mockBookings.EXPECT().ListByGuest(gomock.Any(), guestID).Return(result.Ok(ownList))

		res := s.commands.Update(context.Background(), guestID, int64(999), usecase.UpdateBookingInput{
			NumGuests: "3",
		})

		s.False(res.OK())
		s.Equal(result.CodeNotAllowed, res.Err().Code)
		s.Equal(403, res.Err().HTTPStatus)
	})

	s.Run("empty own list denies every id", func() {
		s.mockBookings.EXPECT().ListByGuest(gomock.Any(), guestID).Return(result.Ok([]usecase.BookingListItem{}))

		res := s.commands.Update(context.Background(), guestID, bookingID, usecase.UpdateBookingInput{
			NumGuests: "3",
		})

		s.False(res.OK())
		s.Equal(result.CodeNotAllowed, res.Err().Code)
	})

	s.Run("ownership lookup failure propagates", func() {
		loadErr := result.NewAppError(result.CodeBookingsLoadError, "errors.bookingsLoad", result.WithStatus(500))
		s.mockBookings.EXPECT().ListByGuest(gomock.Any(), guestID).Return(result.Err[[]usecase.BookingListItem](loadErr))

		res := s.commands.Update(context.Background(), guestID, bookingID, usecase.UpdateBookingInput{
			NumGuests: "3",
		})

		s.False(res.OK())
		s.Equal(result.CodeBookingsLoadError, res.Err().Code)
	})

	s.Run("guest count is validated after ownership", func() {
		s.mockBookings.EXPECT().ListByGuest(gomock.Any(), guestID).Return(result.Ok(ownList))

		res := s.commands.Update(context.Background(), guestID, bookingID, usecase.UpdateBookingInput{
			NumGuests: "-2",
		})

		s.False(res.OK())
		s.Equal(result.CodeValidationError, res.Err().Code)
	})
}

func (s *BookingCommandsTestSuite) TestDelete() {
	const guestID, bookingID = int64(10), int64(1)

	ownList := []usecase.BookingListItem{builder.NewBookingBuilder().BuildListItem()}

	s.Run("owner can delete", func() {
		s.mockBookings.EXPECT().ListByGuest(gomock.Any(), guestID).Return(result.Ok(ownList))
		s.mockBookings.EXPECT().DeleteBooking(gomock.Any(), bookingID).Return(result.Ok(result.Unit{}))

		res := s.commands.Delete(context.Background(), guestID, bookingID)
		s.True(res.OK())
	})

	s.Run("non-owner is denied before the adapter is reached", func() {
		s.mockBookings.EXPECT().ListByGuest(gomock.Any(), guestID).Return(result.Ok(ownList))

		res := s.commands.Delete(context.Background(), guestID, int64(404))

		s.False(res.OK())
		s.Equal(result.CodeNotAllowed, res.Err().Code)
	})
}

func TestBookingQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookings := portsmock.NewMockBookingService(ctrl)
	queries := usecase.NewBookingQueries(mockBookings)

	t.Run("list by guest passes through", func(t *testing.T) {
		items := []usecase.BookingListItem{builder.NewBookingBuilder().BuildListItem()}
		mockBookings.EXPECT().ListByGuest(gomock.Any(), int64(10)).Return(result.Ok(items))

		res := queries.ListByGuest(context.Background(), 10)

		require.True(t, res.OK())
		assert.Equal(t, items, res.Value())
	})

	t.Run("get booking passes through", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		mockBookings.EXPECT().GetBooking(gomock.Any(), int64(1)).Return(result.Ok(b))

		res := queries.GetBooking(context.Background(), 1)

		require.True(t, res.OK())
		assert.Equal(t, int64(1), res.Value().ID())
	})
}

func TestBookingListItemNights(t *testing.T) {
	item := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.StartDate = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		b.EndDate = time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	}).BuildListItem()

	assert.Equal(t, 7, item.NumNights)
}
