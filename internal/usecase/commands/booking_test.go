//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"beautyspace/internal/domain/booking"
	"beautyspace/internal/domain/loyalty"
	"beautyspace/internal/domain/wallet"
	"beautyspace/internal/pkg/clock"
	"beautyspace/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// After a successful Within the uow swaps in the committed clone, so
// assertions must go through uow.state rather than a captured pointer.
func newBookingFixtureUoW(points int, balance int64) (*fakeUoW, commands.BookingCommands, *clock.MockClock) {
	state := newFakeState()
	state.addUser(1, points)
	state.addWorkspace(10, 1000, true)
	if balance > 0 {
		state.deposit(1, balance)
	}

	clk := clock.NewMockClock(baseTime)
	uow := newFakeUoW(state)
	uc := commands.NewBookingUseCase(uow, noopSlotCache{}, clk)
	return uow, uc, clk
}

func createRequest(start, end time.Time) commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		WorkspaceID: 10,
		StartTime:   start,
		EndTime:     end,
		Notes:       "window seat",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	uow, uc, _ := newBookingFixtureUoW(0, 5000)

	result, err := uc.CreateBooking(context.Background(),
		createRequest(baseTime.Add(time.Hour), baseTime.Add(3*time.Hour)), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(2000), result.TotalPrice)
	assert.Equal(t, 20, result.AwardedPoints)
	assert.Equal(t, loyalty.StatusBronze, result.NewStatus)

	b := uow.state.bookings[result.BookingID]
	require.NotNil(t, b)
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())

	assert.Equal(t, int64(3000), uow.state.balance(1))
	assert.Equal(t, 20, uow.state.users[1].Points)

	entries := uow.state.ledgerFor(1)
	require.Len(t, entries, 2)
	assert.Equal(t, wallet.TypePayment, entries[1].txType)
	assert.Equal(t, int64(-2000), entries[1].amount)
}

func TestCreateBooking_GoldDiscount(t *testing.T) {
	uow, uc, _ := newBookingFixtureUoW(1500, 5000)
	uow.state.addWorkspace(11, 500, true)

	req := createRequest(baseTime.Add(time.Hour), baseTime.Add(4*time.Hour))
	req.WorkspaceID = 11

	result, err := uc.CreateBooking(context.Background(), req, 1)
	require.NoError(t, err)

	// 3h * 500 = 1500 list, gold 10% off -> 1350, points = 1350/100
	assert.Equal(t, int64(1350), result.TotalPrice)
	assert.Equal(t, 13, result.AwardedPoints)
	assert.Equal(t, 1513, uow.state.users[1].Points)
	assert.Equal(t, loyalty.StatusGold, result.NewStatus)
}

func TestCreateBooking_PartialHourRoundsUp(t *testing.T) {
	_, uc, _ := newBookingFixtureUoW(0, 5000)

	result, err := uc.CreateBooking(context.Background(),
		createRequest(baseTime.Add(time.Hour), baseTime.Add(time.Hour+90*time.Minute)), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(2000), result.TotalPrice)
}

func TestCreateBooking_Conflict(t *testing.T) {
	uow, uc, _ := newBookingFixtureUoW(0, 5000)

	start := baseTime.Add(time.Hour)
	_, err := uc.CreateBooking(context.Background(), createRequest(start, start.Add(2*time.Hour)), 1)
	require.NoError(t, err)

	balanceBefore := uow.state.balance(1)
	pointsBefore := uow.state.users[1].Points
	bookingsBefore := len(uow.state.bookings)

	_, err = uc.CreateBooking(context.Background(),
		createRequest(start.Add(time.Hour), start.Add(3*time.Hour)), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSlotConflict)

	var conflictErr *commands.SlotConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, start, conflictErr.Start)
	assert.Equal(t, start.Add(2*time.Hour), conflictErr.End)

	// Rolled back: nothing charged, nothing awarded, nothing inserted.
	assert.Equal(t, balanceBefore, uow.state.balance(1))
	assert.Equal(t, pointsBefore, uow.state.users[1].Points)
	assert.Len(t, uow.state.bookings, bookingsBefore)
}

func TestCreateBooking_BackToBackSlotsDoNotConflict(t *testing.T) {
	_, uc, _ := newBookingFixtureUoW(0, 10000)

	start := baseTime.Add(time.Hour)
	_, err := uc.CreateBooking(context.Background(), createRequest(start, start.Add(2*time.Hour)), 1)
	require.NoError(t, err)

	_, err = uc.CreateBooking(context.Background(),
		createRequest(start.Add(2*time.Hour), start.Add(3*time.Hour)), 1)
	assert.NoError(t, err)
}

func TestCreateBooking_InsufficientFunds(t *testing.T) {
	uow, uc, _ := newBookingFixtureUoW(0, 100)

	_, err := uc.CreateBooking(context.Background(),
		createRequest(baseTime.Add(time.Hour), baseTime.Add(2*time.Hour)), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrInsufficientFunds)

	var fundsErr *commands.InsufficientFundsError
	require.ErrorAs(t, err, &fundsErr)
	assert.Equal(t, int64(100), fundsErr.Balance)
	assert.Equal(t, int64(1000), fundsErr.Required)

	assert.Empty(t, uow.state.bookings)
	assert.Equal(t, int64(100), uow.state.balance(1))
}

func TestCreateBooking_WorkspaceUnavailable(t *testing.T) {
	uow, uc, _ := newBookingFixtureUoW(0, 5000)
	uow.state.workspaces[10].IsAvailable = false

	_, err := uc.CreateBooking(context.Background(),
		createRequest(baseTime.Add(time.Hour), baseTime.Add(2*time.Hour)), 1)
	assert.ErrorIs(t, err, commands.ErrWorkspaceUnavailable)
}

func TestCreateBooking_WorkspaceNotFound(t *testing.T) {
	_, uc, _ := newBookingFixtureUoW(0, 5000)

	req := createRequest(baseTime.Add(time.Hour), baseTime.Add(2*time.Hour))
	req.WorkspaceID = 999

	_, err := uc.CreateBooking(context.Background(), req, 1)
	assert.ErrorIs(t, err, commands.ErrWorkspaceNotFound)
}

func TestCreateBooking_InvalidPeriod(t *testing.T) {
	_, uc, _ := newBookingFixtureUoW(0, 5000)

	_, err := uc.CreateBooking(context.Background(),
		createRequest(baseTime.Add(2*time.Hour), baseTime.Add(time.Hour)), 1)
	assert.True(t, errors.Is(err, booking.ErrInvalidPeriod))

	_, err = uc.CreateBooking(context.Background(),
		createRequest(baseTime.Add(-time.Hour), baseTime.Add(time.Hour)), 1)
	assert.True(t, errors.Is(err, booking.ErrPeriodInPast))
}

func TestCancelBooking_RefundsPaidBookingAndKeepsPoints(t *testing.T) {
	uow, uc, _ := newBookingFixtureUoW(0, 5000)

	result, err := uc.CreateBooking(context.Background(),
		createRequest(baseTime.Add(time.Hour), baseTime.Add(3*time.Hour)), 1)
	require.NoError(t, err)
	require.Equal(t, int64(3000), uow.state.balance(1))

	refunded, err := uc.CancelBooking(context.Background(), result.BookingID, 1)
	require.NoError(t, err)
	assert.True(t, refunded)

	b := uow.state.bookings[result.BookingID]
	assert.Equal(t, booking.StatusCancelled, b.Status())
	assert.Equal(t, booking.PaymentRefunded, b.PaymentStatus())

	// Full refund restores the balance; earned points are not clawed back.
	assert.Equal(t, int64(5000), uow.state.balance(1))
	assert.Equal(t, 20, uow.state.users[1].Points)

	entries := uow.state.ledgerFor(1)
	last := entries[len(entries)-1]
	assert.Equal(t, wallet.TypeRefund, last.txType)
	assert.Equal(t, int64(2000), last.amount)
}

func TestCancelBooking_NotOwner(t *testing.T) {
	uow, uc, _ := newBookingFixtureUoW(0, 5000)
	uow.state.addUser(2, 0)

	result, err := uc.CreateBooking(context.Background(),
		createRequest(baseTime.Add(time.Hour), baseTime.Add(2*time.Hour)), 1)
	require.NoError(t, err)

	_, err = uc.CancelBooking(context.Background(), result.BookingID, 2)
	assert.ErrorIs(t, err, booking.ErrNotOwner)
}

func TestCancelBooking_UnpaidBookingCancelsWithoutRefund(t *testing.T) {
	uow, uc, _ := newBookingFixtureUoW(0, 5000)

	result, err := uc.CreateBooking(context.Background(),
		createRequest(baseTime.Add(time.Hour), baseTime.Add(2*time.Hour)), 1)
	require.NoError(t, err)

	// An admin marking the booking unpaid leaves nothing to refund.
	b := uow.state.bookings[result.BookingID]
	uow.state.bookings[result.BookingID] = booking.Reconstruct(
		result.BookingID, b.WorkspaceID(), b.UserID(), b.Period(),
		b.Status(), booking.PaymentPending, b.TotalPrice(), b.Notes(),
		b.CreatedAt(), b.UpdatedAt(),
	)
	balanceBefore := uow.state.balance(1)

	refunded, err := uc.CancelBooking(context.Background(), result.BookingID, 1)
	require.NoError(t, err)
	assert.False(t, refunded)

	assert.Equal(t, booking.StatusCancelled, uow.state.bookings[result.BookingID].Status())
	assert.Equal(t, balanceBefore, uow.state.balance(1))
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	uow, uc, _ := newBookingFixtureUoW(0, 5000)

	result, err := uc.CreateBooking(context.Background(),
		createRequest(baseTime.Add(time.Hour), baseTime.Add(2*time.Hour)), 1)
	require.NoError(t, err)

	_, err = uc.CancelBooking(context.Background(), result.BookingID, 1)
	require.NoError(t, err)
	balanceAfterFirst := uow.state.balance(1)

	_, err = uc.CancelBooking(context.Background(), result.BookingID, 1)
	assert.ErrorIs(t, err, booking.ErrTerminalState)

	// No double refund.
	assert.Equal(t, balanceAfterFirst, uow.state.balance(1))
}

func TestCancelBooking_NotFound(t *testing.T) {
	_, uc, _ := newBookingFixtureUoW(0, 5000)

	_, err := uc.CancelBooking(context.Background(), 999, 1)
	assert.ErrorIs(t, err, commands.ErrBookingNotFound)
}

func TestRescheduleBooking_MovesSlotWithoutRepricing(t *testing.T) {
	uow, uc, _ := newBookingFixtureUoW(0, 5000)

	result, err := uc.CreateBooking(context.Background(),
		createRequest(baseTime.Add(time.Hour), baseTime.Add(3*time.Hour)), 1)
	require.NoError(t, err)

	newStart := baseTime.Add(5 * time.Hour)
	err = uc.RescheduleBooking(context.Background(), result.BookingID, 1, commands.RescheduleBookingRequest{
		StartTime: newStart,
		EndTime:   newStart.Add(4 * time.Hour),
	})
	require.NoError(t, err)

	b := uow.state.bookings[result.BookingID]
	assert.Equal(t, newStart, b.Period().Start())
	// Longer slot, same price: rescheduling never reprices.
	assert.Equal(t, int64(2000), b.TotalPrice())
	assert.Equal(t, int64(3000), uow.state.balance(1))
	assert.Equal(t, 20, uow.state.users[1].Points)
}

func TestRescheduleBooking_OwnSlotDoesNotConflict(t *testing.T) {
	_, uc, _ := newBookingFixtureUoW(0, 5000)

	result, err := uc.CreateBooking(context.Background(),
		createRequest(baseTime.Add(time.Hour), baseTime.Add(3*time.Hour)), 1)
	require.NoError(t, err)

	// Shift by 30 minutes: overlaps only the booking being moved.
	err = uc.RescheduleBooking(context.Background(), result.BookingID, 1, commands.RescheduleBookingRequest{
		StartTime: baseTime.Add(time.Hour + 30*time.Minute),
		EndTime:   baseTime.Add(3*time.Hour + 30*time.Minute),
	})
	assert.NoError(t, err)
}

func TestRescheduleBooking_ConflictWithAnotherBooking(t *testing.T) {
	uow, uc, _ := newBookingFixtureUoW(0, 10000)

	_, err := uc.CreateBooking(context.Background(),
		createRequest(baseTime.Add(time.Hour), baseTime.Add(2*time.Hour)), 1)
	require.NoError(t, err)

	second, err := uc.CreateBooking(context.Background(),
		createRequest(baseTime.Add(3*time.Hour), baseTime.Add(4*time.Hour)), 1)
	require.NoError(t, err)

	err = uc.RescheduleBooking(context.Background(), second.BookingID, 1, commands.RescheduleBookingRequest{
		StartTime: baseTime.Add(time.Hour + 30*time.Minute),
		EndTime:   baseTime.Add(2*time.Hour + 30*time.Minute),
	})
	assert.ErrorIs(t, err, commands.ErrSlotConflict)

	// Unchanged.
	b := uow.state.bookings[second.BookingID]
	assert.Equal(t, baseTime.Add(3*time.Hour), b.Period().Start())
}

func TestRescheduleBooking_CancelledBookingNotMovable(t *testing.T) {
	_, uc, _ := newBookingFixtureUoW(0, 5000)

	result, err := uc.CreateBooking(context.Background(),
		createRequest(baseTime.Add(time.Hour), baseTime.Add(2*time.Hour)), 1)
	require.NoError(t, err)
	_, err = uc.CancelBooking(context.Background(), result.BookingID, 1)
	require.NoError(t, err)

	err = uc.RescheduleBooking(context.Background(), result.BookingID, 1, commands.RescheduleBookingRequest{
		StartTime: baseTime.Add(5 * time.Hour),
		EndTime:   baseTime.Add(6 * time.Hour),
	})
	assert.ErrorIs(t, err, booking.ErrNotMovable)
}

func TestCancelledSlotCanBeRebooked(t *testing.T) {
	_, uc, _ := newBookingFixtureUoW(0, 10000)

	start := baseTime.Add(time.Hour)
	result, err := uc.CreateBooking(context.Background(), createRequest(start, start.Add(2*time.Hour)), 1)
	require.NoError(t, err)
	_, err = uc.CancelBooking(context.Background(), result.BookingID, 1)
	require.NoError(t, err)

	_, err = uc.CreateBooking(context.Background(), createRequest(start, start.Add(2*time.Hour)), 1)
	assert.NoError(t, err)
}
