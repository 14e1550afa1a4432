package readstore

import (
	"context"

	"beautyspace/internal/infra"
	"beautyspace/internal/infra/db"
	"beautyspace/internal/usecase/queries"
)

type TransactionReadStore struct {
	db db.DBTX
}

func NewTransactionReadStore(dbtx db.DBTX) *TransactionReadStore {
	return &TransactionReadStore{db: dbtx}
}

func (r *TransactionReadStore) FindByUserID(ctx context.Context, userID int64) ([]*queries.TransactionView, error) {
	const query = `
		SELECT id, type, amount, status, COALESCE(description, ''), created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions by user", err)
	}
	defer rows.Close()

	var result []*queries.TransactionView
	for rows.Next() {
		var item queries.TransactionView
		err := rows.Scan(&item.ID, &item.Type, &item.Amount, &item.Status, &item.Description, &item.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan transaction row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate transactions", err)
	}
	return result, nil
}

func (r *TransactionReadStore) SumByUserID(ctx context.Context, userID int64) (int64, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1`

	var balance int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		return 0, infra.WrapRepoErr("failed to sum ledger amounts", err)
	}
	return balance, nil
}
