package readstore

import (
	"context"
	"errors"

	"beautyspace/internal/infra"
	"beautyspace/internal/infra/db"
	"beautyspace/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type WorkspaceReadStore struct {
	db db.DBTX
}

func NewWorkspaceReadStore(dbtx db.DBTX) *WorkspaceReadStore {
	return &WorkspaceReadStore{db: dbtx}
}

const workspaceColumns = `
	id, name, COALESCE(description, ''), type, price_per_hour, price_per_day,
	COALESCE(image_url, ''), is_available, rating::float8, review_count, created_at`

func (r *WorkspaceReadStore) FindAll(ctx context.Context) ([]*queries.WorkspaceView, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces ORDER BY rating DESC, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list workspaces", err)
	}
	defer rows.Close()

	var result []*queries.WorkspaceView
	for rows.Next() {
		v, err := scanWorkspace(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan workspace row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate workspaces", err)
	}
	return result, nil
}

func (r *WorkspaceReadStore) FindByID(ctx context.Context, id int64) (*queries.WorkspaceView, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces WHERE id = $1`

	v, err := scanWorkspace(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("workspace not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get workspace by id", err)
	}
	return v, nil
}

func scanWorkspace(row pgx.Row) (*queries.WorkspaceView, error) {
	var v queries.WorkspaceView
	err := row.Scan(
		&v.ID, &v.Name, &v.Description, &v.Type, &v.PricePerHour, &v.PricePerDay,
		&v.ImageURL, &v.IsAvailable, &v.Rating, &v.ReviewCount, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
