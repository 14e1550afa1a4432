package repository

import (
	"context"

	"beautyspace/internal/infra"
	"beautyspace/internal/infra/db"
)

// Advisory lock classes. Workspace and wallet locks live in separate
// namespaces so a workspace id never collides with a user id.
const (
	lockClassWorkspace int64 = 1
	lockClassWallet    int64 = 2
)

// AdvisoryLocks serializes booking attempts per workspace and spends per
// wallet. pg_advisory_xact_lock blocks until granted and releases
// automatically at commit or rollback, so lock lifetime exactly matches the
// check-then-write sequence it protects.
type AdvisoryLocks struct {
	db db.DBTX
}

func NewAdvisoryLocks(dbtx db.DBTX) *AdvisoryLocks {
	return &AdvisoryLocks{db: dbtx}
}

func (l *AdvisoryLocks) LockWorkspace(ctx context.Context, workspaceID int64) error {
	return l.acquire(ctx, lockClassWorkspace, workspaceID)
}

func (l *AdvisoryLocks) LockWallet(ctx context.Context, userID int64) error {
	return l.acquire(ctx, lockClassWallet, userID)
}

func (l *AdvisoryLocks) acquire(ctx context.Context, class, id int64) error {
	const query = `SELECT pg_advisory_xact_lock($1)`

	if _, err := l.db.Exec(ctx, query, lockKey(class, id)); err != nil {
		return infra.WrapRepoErr("failed to acquire advisory lock", err)
	}
	return nil
}

// lockKey packs the class into the top byte of the single bigint key.
// Identity-generated ids stay far below 2^56, so keys never collide across
// classes or between distinct ids of the same class.
func lockKey(class, id int64) int64 {
	return class<<56 | (id & 0x00FFFFFFFFFFFFFF)
}
