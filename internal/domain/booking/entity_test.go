//go:build unit

package booking_test

import (
	"testing"
	"time"

	"beautyspace/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reconstruct(userID int64, status booking.Status, payment booking.PaymentStatus) *booking.Booking {
	period := booking.ReconstructPeriod(at(10, 0), at(12, 0))
	return booking.Reconstruct(1, 7, userID, period, status, payment, 800, "", time.Now(), time.Now())
}

func TestEnsureCancellableBy(t *testing.T) {
	tests := []struct {
		name   string
		status booking.Status
		caller int64
		errIs  error
	}{
		{name: "confirmed by owner", status: booking.StatusConfirmed, caller: 42},
		{name: "pending by owner", status: booking.StatusPending, caller: 42},
		{name: "not the owner", status: booking.StatusConfirmed, caller: 43, errIs: booking.ErrNotOwner},
		{name: "already cancelled", status: booking.StatusCancelled, caller: 42, errIs: booking.ErrTerminalState},
		{name: "already completed", status: booking.StatusCompleted, caller: 42, errIs: booking.ErrTerminalState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := reconstruct(42, tt.status, booking.PaymentPaid)
			err := b.EnsureCancellableBy(tt.caller)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestEnsureReschedulableBy(t *testing.T) {
	tests := []struct {
		name   string
		status booking.Status
		caller int64
		errIs  error
	}{
		{name: "confirmed by owner", status: booking.StatusConfirmed, caller: 42},
		{name: "pending by owner", status: booking.StatusPending, caller: 42},
		{name: "not the owner", status: booking.StatusConfirmed, caller: 43, errIs: booking.ErrNotOwner},
		{name: "cancelled", status: booking.StatusCancelled, caller: 42, errIs: booking.ErrNotMovable},
		{name: "completed", status: booking.StatusCompleted, caller: 42, errIs: booking.ErrNotMovable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := reconstruct(42, tt.status, booking.PaymentPaid)
			err := b.EnsureReschedulableBy(tt.caller)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewBookingDefaults(t *testing.T) {
	period := booking.ReconstructPeriod(at(9, 0), at(11, 0))
	b := booking.NewBooking(7, 42, period, 2000, "window seat")

	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
	assert.True(t, b.IsPaid())
	assert.Equal(t, int64(2000), b.TotalPrice())
	assert.Equal(t, "window seat", b.Notes())
}
