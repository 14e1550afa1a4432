package queries

import (
	"context"
)

type WorkspaceQueries interface {
	List(ctx context.Context) ([]*WorkspaceView, error)
	GetByID(ctx context.Context, id int64) (*WorkspaceView, error)
}

type WorkspaceViewRepo interface {
	FindAll(ctx context.Context) ([]*WorkspaceView, error)
	FindByID(ctx context.Context, id int64) (*WorkspaceView, error)
}

type workspaceQueriesImpl struct {
	repo WorkspaceViewRepo
}

func NewWorkspaceQueries(repo WorkspaceViewRepo) WorkspaceQueries {
	return &workspaceQueriesImpl{repo: repo}
}

func (q *workspaceQueriesImpl) List(ctx context.Context) ([]*WorkspaceView, error) {
	return q.repo.FindAll(ctx)
}

func (q *workspaceQueriesImpl) GetByID(ctx context.Context, id int64) (*WorkspaceView, error) {
	return q.repo.FindByID(ctx, id)
}
