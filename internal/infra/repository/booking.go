package repository

import (
	"context"
	"errors"
	"time"

	"beautyspace/internal/domain/booking"
	"beautyspace/internal/infra"
	"beautyspace/internal/infra/db"
	"beautyspace/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	const query = `
		INSERT INTO bookings (workspace_id, user_id, start_time, end_time, status, payment_status, total_price, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		b.WorkspaceID(), b.UserID(),
		b.Period().Start(), b.Period().End(),
		b.Status().String(), b.PaymentStatus().String(),
		b.TotalPrice(), b.Notes(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

// FindConflict scans active bookings of the workspace for a half-open overlap
// with the candidate period: start < existing.end AND end > existing.start.
// Equal endpoints do not conflict.
func (r *BookingRepository) FindConflict(ctx context.Context, workspaceID int64, period booking.Period, excludeID *int64) (*shared.ConflictWindow, error) {
	const query = `
		SELECT start_time, end_time
		FROM bookings
		WHERE workspace_id = $1
		  AND status IN ('pending', 'confirmed')
		  AND ($2::bigint IS NULL OR id <> $2)
		  AND start_time < $4
		  AND end_time > $3
		ORDER BY start_time
		LIMIT 1`

	var start, end time.Time
	err := r.db.QueryRow(ctx, query, workspaceID, excludeID, period.Start(), period.End()).Scan(&start, &end)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to check booking conflicts", err)
	}

	return &shared.ConflictWindow{Start: start, End: end}, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status booking.Status) error {
	const query = `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status booking.PaymentStatus) error {
	const query = `UPDATE bookings SET payment_status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdatePeriod(ctx context.Context, id int64, period booking.Period) error {
	const query = `UPDATE bookings SET start_time = $2, end_time = $3, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, period.Start(), period.End())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking period", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
