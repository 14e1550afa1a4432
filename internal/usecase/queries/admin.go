package queries

import (
	"context"
)

type AdminQueries interface {
	Stats(ctx context.Context) (*AdminStatsView, error)
	ListUsers(ctx context.Context) ([]*AdminUserListItem, error)
	ListBookings(ctx context.Context) ([]*AdminBookingListItem, error)
	ListReviews(ctx context.Context) ([]*AdminReviewListItem, error)
}

type AdminViewRepo interface {
	CollectStats(ctx context.Context) (*AdminStatsView, error)
	FindAllUsers(ctx context.Context) ([]*AdminUserListItem, error)
	FindAllBookings(ctx context.Context) ([]*AdminBookingListItem, error)
	FindAllReviews(ctx context.Context) ([]*AdminReviewListItem, error)
}

type adminQueriesImpl struct {
	repo AdminViewRepo
}

func NewAdminQueries(repo AdminViewRepo) AdminQueries {
	return &adminQueriesImpl{repo: repo}
}

func (q *adminQueriesImpl) Stats(ctx context.Context) (*AdminStatsView, error) {
	return q.repo.CollectStats(ctx)
}

func (q *adminQueriesImpl) ListUsers(ctx context.Context) ([]*AdminUserListItem, error) {
	return q.repo.FindAllUsers(ctx)
}

func (q *adminQueriesImpl) ListBookings(ctx context.Context) ([]*AdminBookingListItem, error) {
	return q.repo.FindAllBookings(ctx)
}

func (q *adminQueriesImpl) ListReviews(ctx context.Context) ([]*AdminReviewListItem, error) {
	return q.repo.FindAllReviews(ctx)
}
