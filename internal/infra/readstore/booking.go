package readstore

import (
	"context"
	"time"

	"beautyspace/internal/infra"
	"beautyspace/internal/infra/db"
	"beautyspace/internal/usecase/queries"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID int64) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT
			b.id, b.workspace_id, w.name, w.type, COALESCE(w.image_url, ''),
			b.start_time, b.end_time, b.total_price, b.status, b.payment_status,
			b.notes, b.created_at
		FROM bookings b
		JOIN workspaces w ON w.id = b.workspace_id
		WHERE b.user_id = $1
		ORDER BY b.start_time DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		err := rows.Scan(
			&item.ID, &item.WorkspaceID, &item.WorkspaceName, &item.WorkspaceType, &item.WorkspaceImage,
			&item.StartTime, &item.EndTime, &item.TotalPrice, &item.Status, &item.PaymentStatus,
			&item.Notes, &item.CreatedAt,
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

// FindOccupiedSlots reports active booking windows overlapping [dayStart, dayEnd)
// as HH:MM pairs. Cancelled and completed bookings free their slots.
func (r *BookingReadStore) FindOccupiedSlots(ctx context.Context, workspaceID int64, dayStart, dayEnd time.Time) ([]queries.OccupiedSlot, error) {
	const query = `
		SELECT to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM bookings
		WHERE workspace_id = $1
		  AND status IN ('pending', 'confirmed')
		  AND start_time < $3
		  AND end_time > $2
		ORDER BY start_time`

	rows, err := r.db.Query(ctx, query, workspaceID, dayStart, dayEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied slots", err)
	}
	defer rows.Close()

	slots := make([]queries.OccupiedSlot, 0)
	for rows.Next() {
		var s queries.OccupiedSlot
		if err := rows.Scan(&s.Start, &s.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied slot", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupied slots", err)
	}
	return slots, nil
}
