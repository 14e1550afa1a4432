package queries

import (
	"context"
)

type WalletQueries interface {
	ListTransactions(ctx context.Context, userID int64) ([]*TransactionView, error)
	// Balance folds the full ledger; there is no cached balance column.
	Balance(ctx context.Context, userID int64) (int64, error)
}

type WalletViewRepo interface {
	FindByUserID(ctx context.Context, userID int64) ([]*TransactionView, error)
	SumByUserID(ctx context.Context, userID int64) (int64, error)
}

type walletQueriesImpl struct {
	repo WalletViewRepo
}

func NewWalletQueries(repo WalletViewRepo) WalletQueries {
	return &walletQueriesImpl{repo: repo}
}

func (q *walletQueriesImpl) ListTransactions(ctx context.Context, userID int64) ([]*TransactionView, error) {
	return q.repo.FindByUserID(ctx, userID)
}

func (q *walletQueriesImpl) Balance(ctx context.Context, userID int64) (int64, error) {
	return q.repo.SumByUserID(ctx, userID)
}
