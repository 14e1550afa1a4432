package commands

import (
	"context"
	"fmt"
	"time"

	"beautyspace/internal/domain/booking"
	"beautyspace/internal/domain/loyalty"
	"beautyspace/internal/domain/wallet"
	"beautyspace/internal/infra"
	"beautyspace/internal/pkg/clock"
	"beautyspace/internal/pkg/errs"
	"beautyspace/internal/usecase/shared"
)

var (
	ErrWorkspaceNotFound    = errs.New("workspace not found")
	ErrWorkspaceUnavailable = errs.New("workspace is not available")
	ErrSlotConflict         = errs.New("time slot is already booked")
	ErrInsufficientFunds    = errs.New("insufficient funds")
	ErrBookingNotFound      = errs.New("booking not found")
)

// SlotConflictError reports the occupied window so the caller can offer an
// alternative instead of a bare rejection.
type SlotConflictError struct {
	Start time.Time
	End   time.Time
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot already booked from %s to %s",
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

type InsufficientFundsError struct {
	Balance  int64
	Required int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %d, required %d", e.Balance, e.Required)
}

// SlotCacheInvalidator drops cached availability for the affected days after
// a booking mutation commits.
type SlotCacheInvalidator interface {
	Invalidate(ctx context.Context, workspaceID int64, days ...time.Time)
}

type CreateBookingRequest struct {
	WorkspaceID int64
	StartTime   time.Time
	EndTime     time.Time
	Notes       string
}

type CreateBookingResult struct {
	BookingID     int64
	TotalPrice    int64
	AwardedPoints int
	NewStatus     loyalty.Status
}

type RescheduleBookingRequest struct {
	StartTime time.Time
	EndTime   time.Time
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, userID int64) (*CreateBookingResult, error)
	// CancelBooking reports whether a refund was issued; unpaid bookings
	// cancel without one.
	CancelBooking(ctx context.Context, bookingID, userID int64) (refunded bool, err error)
	RescheduleBooking(ctx context.Context, bookingID, userID int64, req RescheduleBookingRequest) error
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	slotCache SlotCacheInvalidator
	clock     clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, slotCache SlotCacheInvalidator, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, slotCache: slotCache, clock: clk}
}

// CreateBooking charges the wallet and confirms the slot in one transaction.
// The workspace advisory lock serializes concurrent attempts on the same
// workspace; the wallet lock serializes concurrent spends by the same user.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, userID int64) (*CreateBookingResult, error) {
	period, err := booking.NewPeriod(req.StartTime, req.EndTime, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var result CreateBookingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Locks().LockWorkspace(ctx, req.WorkspaceID); err != nil {
			return err
		}

		ws, err := tx.Reads().WorkspaceByID(ctx, req.WorkspaceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrWorkspaceNotFound)
			}
			return err
		}
		if !ws.IsAvailable {
			return ErrWorkspaceUnavailable
		}

		usr, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return err
		}

		quote := booking.NewQuote(period, ws.PricePerHour, loyalty.TierFor(usr.Points))

		if err := tx.Locks().LockWallet(ctx, userID); err != nil {
			return err
		}

		balance, err := tx.Transactions().SumAmounts(ctx, userID)
		if err != nil {
			return err
		}
		if balance < quote.FinalPrice {
			return errs.Mark(&InsufficientFundsError{Balance: balance, Required: quote.FinalPrice}, ErrInsufficientFunds)
		}

		conflict, err := tx.Bookings().FindConflict(ctx, req.WorkspaceID, period, nil)
		if err != nil {
			return err
		}
		if conflict != nil {
			return errs.Mark(&SlotConflictError{Start: conflict.Start, End: conflict.End}, ErrSlotConflict)
		}

		b := booking.NewBooking(req.WorkspaceID, userID, period, quote.FinalPrice, req.Notes)
		bookingID, err := tx.Bookings().Create(ctx, b)
		if err != nil {
			return err
		}

		desc := fmt.Sprintf("Payment for booking #%d (%s)", bookingID, ws.Name)
		_, err = tx.Transactions().Append(ctx, userID,
			wallet.TypePayment, wallet.TypePayment.SignAmount(quote.FinalPrice),
			desc, wallet.StatusCompleted)
		if err != nil {
			return err
		}

		newStatus, err := awardPoints(ctx, tx, userID, quote.AwardedPoints())
		if err != nil {
			return err
		}

		result = CreateBookingResult{
			BookingID:     bookingID,
			TotalPrice:    quote.FinalPrice,
			AwardedPoints: quote.AwardedPoints(),
			NewStatus:     newStatus,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.slotCache.Invalidate(ctx, req.WorkspaceID, period.Start(), period.End())
	return &result, nil
}

// CancelBooking refunds the full price when the booking was paid. Loyalty
// points earned on the original payment are kept.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID, userID int64) (bool, error) {
	var (
		workspaceID int64
		period      booking.Period
		refunded    bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return err
		}
		if err := b.EnsureCancellableBy(userID); err != nil {
			return err
		}

		if err := tx.Bookings().UpdateStatus(ctx, bookingID, booking.StatusCancelled); err != nil {
			return err
		}

		if b.IsPaid() {
			if err := tx.Bookings().UpdatePaymentStatus(ctx, bookingID, booking.PaymentRefunded); err != nil {
				return err
			}
			desc := fmt.Sprintf("Refund for cancelled booking #%d", bookingID)
			_, err = tx.Transactions().Append(ctx, userID,
				wallet.TypeRefund, wallet.TypeRefund.SignAmount(b.TotalPrice()),
				desc, wallet.StatusCompleted)
			if err != nil {
				return err
			}
			refunded = true
		}

		workspaceID = b.WorkspaceID()
		period = b.Period()
		return nil
	})
	if err != nil {
		return false, err
	}

	uc.slotCache.Invalidate(ctx, workspaceID, period.Start(), period.End())
	return refunded, nil
}

// RescheduleBooking moves the slot without repricing: the original price and
// awarded points stand even if the new duration differs.
func (uc *bookingUseCaseImpl) RescheduleBooking(ctx context.Context, bookingID, userID int64, req RescheduleBookingRequest) error {
	newPeriod, err := booking.NewPeriod(req.StartTime, req.EndTime, uc.clock.Now())
	if err != nil {
		return err
	}

	var (
		workspaceID int64
		oldPeriod   booking.Period
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return err
		}
		if err := b.EnsureReschedulableBy(userID); err != nil {
			return err
		}

		if err := tx.Locks().LockWorkspace(ctx, b.WorkspaceID()); err != nil {
			return err
		}

		excludeID := bookingID
		conflict, err := tx.Bookings().FindConflict(ctx, b.WorkspaceID(), newPeriod, &excludeID)
		if err != nil {
			return err
		}
		if conflict != nil {
			return errs.Mark(&SlotConflictError{Start: conflict.Start, End: conflict.End}, ErrSlotConflict)
		}

		if err := tx.Bookings().UpdatePeriod(ctx, bookingID, newPeriod); err != nil {
			return err
		}

		workspaceID = b.WorkspaceID()
		oldPeriod = b.Period()
		return nil
	})
	if err != nil {
		return err
	}

	uc.slotCache.Invalidate(ctx, workspaceID,
		oldPeriod.Start(), oldPeriod.End(), newPeriod.Start(), newPeriod.End())
	return nil
}

// awardPoints increments the balance atomically, then derives and persists
// the tier from the post-increment total.
func awardPoints(ctx context.Context, tx shared.Tx, userID int64, points int) (loyalty.Status, error) {
	total, err := tx.Users().AddPoints(ctx, userID, points)
	if err != nil {
		return "", err
	}
	status := loyalty.TierFor(total).Status
	if err := tx.Users().SetStatus(ctx, userID, status); err != nil {
		return "", err
	}
	return status, nil
}
