package shared

import (
	"context"
	"time"

	"beautyspace/internal/domain/booking"
	"beautyspace/internal/domain/loyalty"
	"beautyspace/internal/domain/review"
	"beautyspace/internal/domain/user"
	"beautyspace/internal/domain/wallet"
	"beautyspace/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// Reads: Direct access to command reads for validation outside transactions
	Reads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Reviews() ReviewRepository
	Transactions() TransactionRepository
	Users() UserRepository
	Workspaces() WorkspaceRepository
	Locks() AdvisoryLocks
	Reads() CommandReads
	DB() db.DBTX
}

// AdvisoryLocks serializes check-then-insert sequences. Both locks are
// transaction-scoped: they release on commit or rollback.
type AdvisoryLocks interface {
	// LockWorkspace guards the conflict check and booking insert for one
	// workspace against concurrent booking attempts.
	LockWorkspace(ctx context.Context, workspaceID int64) error
	// LockWallet guards the balance check and ledger append for one user
	// against concurrent spends.
	LockWallet(ctx context.Context, userID int64) error
}

type CommandReads interface {
	WorkspaceByID(ctx context.Context, id int64) (*WorkspaceSnapshot, error)
	BookingByID(ctx context.Context, id int64) (*booking.Booking, error)
	UserByID(ctx context.Context, id int64) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserCredentials, error)
	ReviewByID(ctx context.Context, id int64) (*ReviewSnapshot, error)
}

// Minimal snapshots for command-side validation reads.

type WorkspaceSnapshot struct {
	ID           int64
	Name         string
	PricePerHour int64
	IsAvailable  bool
}

type UserSnapshot struct {
	ID     int64
	Email  string
	Name   string
	Role   user.Role
	Points int
	Status loyalty.Status
}

// UserCredentials carries the password hash and is reserved for the sign-in
// path; everything else reads UserSnapshot.
type UserCredentials struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Role         user.Role
}

type ReviewSnapshot struct {
	ID          int64
	WorkspaceID int64
	UserID      int64
	Rating      int
}

// PendingTopUp is a deposit awaiting payment confirmation, parked outside the
// ledger until the code is consumed.
type PendingTopUp struct {
	UserID int64 `json:"user_id"`
	Amount int64 `json:"amount"`
}

// ConflictWindow is the occupied interval reported to the caller when a
// candidate booking overlaps an existing one.
type ConflictWindow struct {
	Start time.Time
	End   time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (int64, error)
	// FindConflict returns the first active booking window overlapping the
	// candidate period, or nil when the slot is free. excludeID skips one
	// booking (used by reschedule).
	FindConflict(ctx context.Context, workspaceID int64, period booking.Period, excludeID *int64) (*ConflictWindow, error)
	UpdateStatus(ctx context.Context, id int64, status booking.Status) error
	UpdatePaymentStatus(ctx context.Context, id int64, status booking.PaymentStatus) error
	UpdatePeriod(ctx context.Context, id int64, period booking.Period) error
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type TransactionRepository interface {
	Append(ctx context.Context, userID int64, txType wallet.TransactionType, amount int64, description string, status wallet.TransactionStatus) (int64, error)
	// SumAmounts is the ledger-sum balance: the only source of truth.
	SumAmounts(ctx context.Context, userID int64) (int64, error)
}

type UserRepository interface {
	// AddPoints increments atomically and returns the post-increment total.
	AddPoints(ctx context.Context, userID int64, delta int) (int, error)
	SetStatus(ctx context.Context, userID int64, status loyalty.Status) error
	SetPoints(ctx context.Context, userID int64, points int) error
	UpdateProfile(ctx context.Context, userID int64, name string, role user.Role) error
	Create(ctx context.Context, email, name, passwordHash string, role user.Role) (int64, error)
	UpdateLastSignedIn(ctx context.Context, userID int64) error
	Delete(ctx context.Context, userID int64) error
}

type WorkspaceRepository interface {
	// RecalcRating recomputes the denormalized rating/review_count pair from
	// the review rows in one statement.
	RecalcRating(ctx context.Context, workspaceID int64) error
	Create(ctx context.Context, params CreateWorkspaceParams) (int64, error)
	Update(ctx context.Context, id int64, params UpdateWorkspaceParams) error
	Delete(ctx context.Context, id int64) error
}

type CreateWorkspaceParams struct {
	Name         string
	Description  string
	Type         string
	PricePerHour int64
	PricePerDay  int64
	ImageURL     string
	IsAvailable  bool
}

type UpdateWorkspaceParams struct {
	Name         *string
	Description  *string
	Type         *string
	PricePerHour *int64
	PricePerDay  *int64
	ImageURL     *string
	IsAvailable  *bool
}
