package queries

import (
	"context"
)

type UserQueries interface {
	Profile(ctx context.Context, userID int64) (*UserProfileView, error)
	Stats(ctx context.Context, userID int64) (*UserStatsView, error)
}

type UserViewRepo interface {
	FindProfile(ctx context.Context, userID int64) (*UserProfileView, error)
	FindStats(ctx context.Context, userID int64) (*UserStatsView, error)
}

type userQueriesImpl struct {
	repo UserViewRepo
}

func NewUserQueries(repo UserViewRepo) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) Profile(ctx context.Context, userID int64) (*UserProfileView, error) {
	return q.repo.FindProfile(ctx, userID)
}

func (q *userQueriesImpl) Stats(ctx context.Context, userID int64) (*UserStatsView, error) {
	return q.repo.FindStats(ctx, userID)
}
