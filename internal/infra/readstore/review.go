package readstore

import (
	"context"

	"beautyspace/internal/infra"
	"beautyspace/internal/infra/db"
	"beautyspace/internal/usecase/queries"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

func (r *ReviewReadStore) FindByWorkspaceID(ctx context.Context, workspaceID int64) ([]*queries.ReviewListItem, error) {
	const query = `
		SELECT
			rv.id, rv.workspace_id, rv.user_id, COALESCE(u.name, ''), rv.booking_id,
			rv.rating, COALESCE(rv.comment, ''), rv.created_at
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.workspace_id = $1
		ORDER BY rv.created_at DESC`

	rows, err := r.db.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by workspace", err)
	}
	defer rows.Close()

	var result []*queries.ReviewListItem
	for rows.Next() {
		var item queries.ReviewListItem
		err := rows.Scan(
			&item.ID, &item.WorkspaceID, &item.UserID, &item.UserName, &item.BookingID,
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
