package readstore

import (
	"context"
	"errors"
	"time"

	"beautyspace/internal/domain/booking"
	"beautyspace/internal/domain/loyalty"
	"beautyspace/internal/domain/user"
	"beautyspace/internal/infra"
	"beautyspace/internal/infra/db"
	"beautyspace/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

// CommandReads serves the command side's validation lookups. It runs over
// whatever DBTX it is bound to, so inside a unit of work it sees the
// transaction's own writes.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) WorkspaceByID(ctx context.Context, id int64) (*shared.WorkspaceSnapshot, error) {
	const query = `SELECT id, name, price_per_hour, is_available FROM workspaces WHERE id = $1`

	var s shared.WorkspaceSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.PricePerHour, &s.IsAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("workspace not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get workspace", err)
	}
	return &s, nil
}

func (r *CommandReads) BookingByID(ctx context.Context, id int64) (*booking.Booking, error) {
	const query = `
		SELECT id, workspace_id, user_id, start_time, end_time,
		       status, payment_status, total_price, COALESCE(notes, ''),
		       created_at, updated_at
		FROM bookings
		WHERE id = $1`

	var (
		bookingID, workspaceID, userID, totalPrice int64
		start, end, createdAt, updatedAt           time.Time
		status, paymentStatus, notes               string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bookingID, &workspaceID, &userID, &start, &end,
		&status, &paymentStatus, &totalPrice, &notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}

	return booking.Reconstruct(
		bookingID, workspaceID, userID,
		booking.ReconstructPeriod(start, end),
		booking.Status(status),
		booking.PaymentStatus(paymentStatus),
		totalPrice, notes, createdAt, updatedAt,
	), nil
}

func (r *CommandReads) UserByID(ctx context.Context, id int64) (*shared.UserSnapshot, error) {
	const query = `SELECT id, email, COALESCE(name, ''), role, points, status FROM users WHERE id = $1`

	var (
		s         shared.UserSnapshot
		roleRaw   string
		statusRaw string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Email, &s.Name, &roleRaw, &s.Points, &statusRaw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user", err)
	}
	s.Role = user.Role(roleRaw)
	s.Status = loyalty.Status(statusRaw)
	return &s, nil
}

func (r *CommandReads) UserByEmail(ctx context.Context, email string) (*shared.UserCredentials, error) {
	const query = `SELECT id, email, COALESCE(name, ''), password_hash, role FROM users WHERE email = $1`

	var (
		c       shared.UserCredentials
		roleRaw string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(&c.ID, &c.Email, &c.Name, &c.PasswordHash, &roleRaw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user by email", err)
	}
	c.Role = user.Role(roleRaw)
	return &c, nil
}

func (r *CommandReads) ReviewByID(ctx context.Context, id int64) (*shared.ReviewSnapshot, error) {
	const query = `SELECT id, workspace_id, user_id, rating FROM reviews WHERE id = $1`

	var s shared.ReviewSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.WorkspaceID, &s.UserID, &s.Rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review", err)
	}
	return &s, nil
}
