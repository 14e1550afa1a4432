package repository

import (
	"context"
	"errors"

	"beautyspace/internal/domain/review"
	"beautyspace/internal/infra"
	"beautyspace/internal/infra/db"

	"github.com/jackc/pgx/v5/pgconn"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (int64, error) {
	const query = `
		INSERT INTO reviews (workspace_id, user_id, booking_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		rev.WorkspaceID(), rev.UserID(), rev.BookingID(),
		rev.Rating().Value(), rev.Comment().String(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, infra.WrapRepoErr("workspace or booking does not exist", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM reviews WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
