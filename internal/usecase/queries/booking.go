package queries

import (
	"context"
	"time"

	"beautyspace/internal/pkg/errs"
)

var ErrInvalidDate = errs.New("date must be formatted as YYYY-MM-DD")

const slotDateLayout = "2006-01-02"

type BookingQueries interface {
	ListByUser(ctx context.Context, userID int64) ([]*BookingListItem, error)
	// OccupiedSlots reports the taken intervals of one workspace for one day.
	// The result is advisory only; the booking command re-checks under lock.
	OccupiedSlots(ctx context.Context, workspaceID int64, date string) ([]OccupiedSlot, error)
}

type BookingViewRepo interface {
	FindByUserID(ctx context.Context, userID int64) ([]*BookingListItem, error)
	FindOccupiedSlots(ctx context.Context, workspaceID int64, dayStart, dayEnd time.Time) ([]OccupiedSlot, error)
}

// OccupiedSlotsCache shields the hot availability endpoint from the database.
// A miss is never an error; cache failures degrade to a direct read.
type OccupiedSlotsCache interface {
	Get(ctx context.Context, workspaceID int64, date string) ([]OccupiedSlot, bool)
	Set(ctx context.Context, workspaceID int64, date string, slots []OccupiedSlot)
}

type bookingQueriesImpl struct {
	repo  BookingViewRepo
	cache OccupiedSlotsCache
}

func NewBookingQueries(repo BookingViewRepo, cache OccupiedSlotsCache) BookingQueries {
	return &bookingQueriesImpl{repo: repo, cache: cache}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID int64) ([]*BookingListItem, error) {
	return q.repo.FindByUserID(ctx, userID)
}

func (q *bookingQueriesImpl) OccupiedSlots(ctx context.Context, workspaceID int64, date string) ([]OccupiedSlot, error) {
	day, err := time.Parse(slotDateLayout, date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	if slots, ok := q.cache.Get(ctx, workspaceID, date); ok {
		return slots, nil
	}

	slots, err := q.repo.FindOccupiedSlots(ctx, workspaceID, day, day.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}
	q.cache.Set(ctx, workspaceID, date, slots)
	return slots, nil
}
