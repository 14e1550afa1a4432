package readstore

import (
	"context"
	"errors"

	"beautyspace/internal/domain/loyalty"
	"beautyspace/internal/infra"
	"beautyspace/internal/infra/db"
	"beautyspace/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindProfile(ctx context.Context, userID int64) (*queries.UserProfileView, error) {
	const query = `
		SELECT id, email, COALESCE(name, ''), role, points, status, created_at
		FROM users
		WHERE id = $1`

	var v queries.UserProfileView
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&v.ID, &v.Email, &v.Name, &v.Role, &v.Points, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user profile", err)
	}
	v.DiscountPercent = loyalty.TierFor(v.Points).DiscountPercent
	v.PointsToNext = loyalty.PointsToNext(v.Points)
	return &v, nil
}

// FindStats aggregates booking counters and the ledger-sum balance in one
// round trip.
func (r *UserReadStore) FindStats(ctx context.Context, userID int64) (*queries.UserStatsView, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM bookings WHERE user_id = $1),
			(SELECT COUNT(*) FROM bookings WHERE user_id = $1 AND status IN ('pending', 'confirmed')),
			(SELECT COUNT(*) FROM bookings WHERE user_id = $1 AND status = 'completed'),
			(SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1)`

	var v queries.UserStatsView
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&v.TotalBookings, &v.ActiveBookings, &v.CompletedBookings, &v.Balance,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get user stats", err)
	}
	return &v, nil
}
