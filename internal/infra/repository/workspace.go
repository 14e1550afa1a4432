package repository

import (
	"context"

	"beautyspace/internal/infra"
	"beautyspace/internal/infra/db"
	"beautyspace/internal/usecase/shared"
)

type WorkspaceRepository struct {
	db db.DBTX
}

func NewWorkspaceRepository(dbtx db.DBTX) *WorkspaceRepository {
	return &WorkspaceRepository{db: dbtx}
}

// RecalcRating rebuilds the denormalized rating/review_count pair from the
// review rows. One statement keeps the aggregate and its source consistent
// within the surrounding transaction; when the last review goes away both
// collapse to zero.
func (r *WorkspaceRepository) RecalcRating(ctx context.Context, workspaceID int64) error {
	const query = `
		UPDATE workspaces SET
			rating = COALESCE((SELECT ROUND(AVG(rating)::numeric, 1) FROM reviews WHERE workspace_id = $1), 0),
			review_count = (SELECT COUNT(*) FROM reviews WHERE workspace_id = $1),
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, workspaceID)
	if err != nil {
		return infra.WrapRepoErr("failed to recalc workspace rating", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("workspace not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *WorkspaceRepository) Create(ctx context.Context, params shared.CreateWorkspaceParams) (int64, error) {
	const query = `
		INSERT INTO workspaces (name, description, type, price_per_hour, price_per_day, image_url, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		params.Name, params.Description, params.Type,
		params.PricePerHour, params.PricePerDay, params.ImageURL, params.IsAvailable,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create workspace", err)
	}
	return id, nil
}

func (r *WorkspaceRepository) Update(ctx context.Context, id int64, params shared.UpdateWorkspaceParams) error {
	const query = `
		UPDATE workspaces SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			type = COALESCE($4::workspace_type, type),
			price_per_hour = COALESCE($5, price_per_hour),
			price_per_day = COALESCE($6, price_per_day),
			image_url = COALESCE($7, image_url),
			is_available = COALESCE($8, is_available),
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id,
		params.Name, params.Description, params.Type,
		params.PricePerHour, params.PricePerDay, params.ImageURL, params.IsAvailable,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update workspace", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("workspace not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *WorkspaceRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM workspaces WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete workspace", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("workspace not found", nil, infra.KindNotFound)
	}
	return nil
}
