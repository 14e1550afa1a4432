package booking

import (
	"errors"
	"time"
)

var (
	ErrNotOwner      = errors.New("booking does not belong to the caller")
	ErrTerminalState = errors.New("booking is in a terminal state")
	ErrNotMovable    = errors.New("only pending or confirmed bookings can be rescheduled")
)

type Booking struct {
	id            int64
	workspaceID   int64
	userID        int64
	period        Period
	status        Status
	paymentStatus PaymentStatus
	totalPrice    int64
	notes         string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking creates a booking directly in the paid, confirmed state — the
// happy path has no separate hold phase.
func NewBooking(workspaceID, userID int64, period Period, totalPrice int64, notes string) *Booking {
	return &Booking{
		workspaceID:   workspaceID,
		userID:        userID,
		period:        period,
		status:        StatusConfirmed,
		paymentStatus: PaymentPaid,
		totalPrice:    totalPrice,
		notes:         notes,
	}
}

func Reconstruct(
	id, workspaceID, userID int64,
	period Period,
	status Status,
	paymentStatus PaymentStatus,
	totalPrice int64,
	notes string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		workspaceID:   workspaceID,
		userID:        userID,
		period:        period,
		status:        status,
		paymentStatus: paymentStatus,
		totalPrice:    totalPrice,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// EnsureCancellableBy checks ownership and that the booking is not already
// finished or cancelled.
func (b *Booking) EnsureCancellableBy(userID int64) error {
	if b.userID != userID {
		return ErrNotOwner
	}
	if b.status.IsTerminal() {
		return ErrTerminalState
	}
	return nil
}

// EnsureReschedulableBy checks ownership and that the booking still occupies
// a slot that can be moved.
func (b *Booking) EnsureReschedulableBy(userID int64) error {
	if b.userID != userID {
		return ErrNotOwner
	}
	if !b.status.IsActive() {
		return ErrNotMovable
	}
	return nil
}

func (b *Booking) IsPaid() bool {
	return b.paymentStatus == PaymentPaid
}

func (b *Booking) ID() int64                    { return b.id }
func (b *Booking) WorkspaceID() int64           { return b.workspaceID }
func (b *Booking) UserID() int64                { return b.userID }
func (b *Booking) Period() Period               { return b.period }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) TotalPrice() int64            { return b.totalPrice }
func (b *Booking) Notes() string                { return b.notes }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
