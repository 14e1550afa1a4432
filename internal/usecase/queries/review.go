package queries

import (
	"context"
)

type ReviewQueries interface {
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]*ReviewListItem, error)
}

type ReviewViewRepo interface {
	FindByWorkspaceID(ctx context.Context, workspaceID int64) ([]*ReviewListItem, error)
}

type reviewQueriesImpl struct {
	repo ReviewViewRepo
}

func NewReviewQueries(repo ReviewViewRepo) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByWorkspace(ctx context.Context, workspaceID int64) ([]*ReviewListItem, error) {
	return q.repo.FindByWorkspaceID(ctx, workspaceID)
}
