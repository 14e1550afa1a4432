package repository

import (
	"context"
	"errors"

	"beautyspace/internal/domain/loyalty"
	"beautyspace/internal/domain/user"
	"beautyspace/internal/infra"
	"beautyspace/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

// AddPoints is the atomic increment half of a points award; callers recompute
// the tier from the returned total and persist it with SetStatus in the same
// transaction.
func (r *UserRepository) AddPoints(ctx context.Context, userID int64, delta int) (int, error) {
	const query = `UPDATE users SET points = points + $2, updated_at = now() WHERE id = $1 RETURNING points`

	var points int
	err := r.db.QueryRow(ctx, query, userID, delta).Scan(&points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to add points", err)
	}
	return points, nil
}

func (r *UserRepository) SetStatus(ctx context.Context, userID int64, status loyalty.Status) error {
	const query = `UPDATE users SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, userID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to set user status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// SetPoints is the admin correction path: the one place points may decrease.
func (r *UserRepository) SetPoints(ctx context.Context, userID int64, points int) error {
	const query = `UPDATE users SET points = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, userID, points)
	if err != nil {
		return infra.WrapRepoErr("failed to set user points", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, name string, role user.Role) error {
	const query = `UPDATE users SET name = $2, role = $3, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, userID, name, role.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, email, name, passwordHash string, role user.Role) (int64, error) {
	const query = `
		INSERT INTO users (email, name, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query, email, name, passwordHash, role.String()).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return 0, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastSignedIn(ctx context.Context, userID int64) error {
	const query = `UPDATE users SET last_signed_in = now() WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return infra.WrapRepoErr("failed to update last signed in", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID int64) error {
	const query = `DELETE FROM users WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return infra.WrapRepoErr("user is referenced by ledger entries", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
