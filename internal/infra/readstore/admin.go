package readstore

import (
	"context"

	"beautyspace/internal/infra"
	"beautyspace/internal/infra/db"
	"beautyspace/internal/usecase/queries"
)

type AdminReadStore struct {
	db db.DBTX
}

func NewAdminReadStore(dbtx db.DBTX) *AdminReadStore {
	return &AdminReadStore{db: dbtx}
}

func (r *AdminReadStore) CollectStats(ctx context.Context) (*queries.AdminStatsView, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM workspaces),
			(SELECT COUNT(*) FROM bookings),
			(SELECT COUNT(*) FROM bookings WHERE status IN ('pending', 'confirmed')),
			(SELECT COUNT(*) FROM reviews),
			(SELECT COALESCE(SUM(total_price), 0) FROM bookings WHERE payment_status = 'paid')`

	var v queries.AdminStatsView
	err := r.db.QueryRow(ctx, query).Scan(
		&v.TotalUsers, &v.TotalWorkspaces, &v.TotalBookings,
		&v.ActiveBookings, &v.TotalReviews, &v.TotalRevenue,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to collect admin stats", err)
	}
	return &v, nil
}

func (r *AdminReadStore) FindAllUsers(ctx context.Context) ([]*queries.AdminUserListItem, error) {
	const query = `
		SELECT id, email, COALESCE(name, ''), role, points, status, created_at, last_signed_in
		FROM users
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var result []*queries.AdminUserListItem
	for rows.Next() {
		var item queries.AdminUserListItem
		err := rows.Scan(
			&item.ID, &item.Email, &item.Name, &item.Role,
			&item.Points, &item.Status, &item.CreatedAt, &item.LastSignedIn,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate users", err)
	}
	return result, nil
}

func (r *AdminReadStore) FindAllBookings(ctx context.Context) ([]*queries.AdminBookingListItem, error) {
	const query = `
		SELECT
			b.id, b.user_id, u.email, b.workspace_id, w.name,
			b.start_time, b.end_time, b.total_price, b.status, b.payment_status, b.created_at
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN workspaces w ON w.id = b.workspace_id
		ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.AdminBookingListItem
	for rows.Next() {
		var item queries.AdminBookingListItem
		err := rows.Scan(
			&item.ID, &item.UserID, &item.UserEmail, &item.WorkspaceID, &item.WorkspaceName,
			&item.StartTime, &item.EndTime, &item.TotalPrice, &item.Status, &item.PaymentStatus, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}

func (r *AdminReadStore) FindAllReviews(ctx context.Context) ([]*queries.AdminReviewListItem, error) {
	const query = `
		SELECT
			rv.id, rv.workspace_id, w.name, rv.user_id, u.email,
			rv.rating, COALESCE(rv.comment, ''), rv.created_at
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		JOIN workspaces w ON w.id = rv.workspace_id
		ORDER BY rv.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var result []*queries.AdminReviewListItem
	for rows.Next() {
		var item queries.AdminReviewListItem
		err := rows.Scan(
			&item.ID, &item.WorkspaceID, &item.WorkspaceName, &item.UserID, &item.UserEmail,
			&item.Rating, &item.Comment, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reviews", err)
	}
	return result, nil
}
