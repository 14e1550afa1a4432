package repository

import (
	"context"

	"beautyspace/internal/domain/wallet"
	"beautyspace/internal/infra"
	"beautyspace/internal/infra/db"
)

type TransactionRepository struct {
	db db.DBTX
}

func NewTransactionRepository(dbtx db.DBTX) *TransactionRepository {
	return &TransactionRepository{db: dbtx}
}

// Append inserts a ledger entry. Rows are never updated or deleted;
// corrections are new offsetting entries.
func (r *TransactionRepository) Append(ctx context.Context, userID int64, txType wallet.TransactionType, amount int64, description string, status wallet.TransactionStatus) (int64, error) {
	const query = `
		INSERT INTO transactions (user_id, type, amount, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query, userID, txType.String(), amount, description, status.String()).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to append transaction", err)
	}
	return id, nil
}

func (r *TransactionRepository) SumAmounts(ctx context.Context, userID int64) (int64, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1`

	var balance int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum transaction amounts", err)
	}
	return balance, nil
}
