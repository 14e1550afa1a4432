//go:build unit

package commands_test

import (
	"context"
	"time"

	"beautyspace/internal/domain/booking"
	"beautyspace/internal/domain/loyalty"
	"beautyspace/internal/domain/review"
	"beautyspace/internal/domain/user"
	"beautyspace/internal/domain/wallet"
	"beautyspace/internal/infra"
	"beautyspace/internal/infra/db"
	"beautyspace/internal/usecase/shared"
)

// fakeState is an in-memory stand-in for the database. fakeUoW.Within runs
// the callback against a clone and only publishes it on success, so failed
// commands leave the observable state untouched, like a rolled-back
// transaction would.
type fakeState struct {
	workspaces  map[int64]*shared.WorkspaceSnapshot
	users       map[int64]*shared.UserSnapshot
	credentials map[string]*shared.UserCredentials
	bookings    map[int64]*booking.Booking
	reviews     map[int64]*shared.ReviewSnapshot
	ledger      []ledgerEntry
	nextID      int64

	ratingRecalcs []int64
	lockLog       []string
}

type ledgerEntry struct {
	userID int64
	txType wallet.TransactionType
	amount int64
	desc   string
	status wallet.TransactionStatus
}

func newFakeState() *fakeState {
	return &fakeState{
		workspaces:  make(map[int64]*shared.WorkspaceSnapshot),
		users:       make(map[int64]*shared.UserSnapshot),
		credentials: make(map[string]*shared.UserCredentials),
		bookings:    make(map[int64]*booking.Booking),
		reviews:     make(map[int64]*shared.ReviewSnapshot),
		nextID:      1,
	}
}

func (s *fakeState) clone() *fakeState {
	c := newFakeState()
	c.nextID = s.nextID
	for id, w := range s.workspaces {
		cp := *w
		c.workspaces[id] = &cp
	}
	for id, u := range s.users {
		cp := *u
		c.users[id] = &cp
	}
	for email, cr := range s.credentials {
		cp := *cr
		c.credentials[email] = &cp
	}
	for id, b := range s.bookings {
		c.bookings[id] = b
	}
	for id, r := range s.reviews {
		cp := *r
		c.reviews[id] = &cp
	}
	c.ledger = append(c.ledger, s.ledger...)
	c.ratingRecalcs = append(c.ratingRecalcs, s.ratingRecalcs...)
	c.lockLog = append(c.lockLog, s.lockLog...)
	return c
}

func (s *fakeState) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *fakeState) addUser(id int64, points int) {
	tier := loyalty.TierFor(points)
	s.users[id] = &shared.UserSnapshot{
		ID:     id,
		Email:  "user@example.com",
		Name:   "Test User",
		Role:   user.RoleUser,
		Points: points,
		Status: tier.Status,
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}
}

func (s *fakeState) addWorkspace(id, pricePerHour int64, available bool) {
	s.workspaces[id] = &shared.WorkspaceSnapshot{
		ID:           id,
		Name:         "Studio",
		PricePerHour: pricePerHour,
		IsAvailable:  available,
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}
}

func (s *fakeState) deposit(userID, amount int64) {
	s.ledger = append(s.ledger, ledgerEntry{
		userID: userID,
		txType: wallet.TypeDeposit,
		amount: amount,
		status: wallet.StatusCompleted,
	})
}

func (s *fakeState) balance(userID int64) int64 {
	var sum int64
	for _, e := range s.ledger {
		if e.userID == userID {
			sum += e.amount
		}
	}
	return sum
}

func (s *fakeState) ledgerFor(userID int64) []ledgerEntry {
	var entries []ledgerEntry
	for _, e := range s.ledger {
		if e.userID == userID {
			entries = append(entries, e)
		}
	}
	return entries
}

// fakeUoW

type fakeUoW struct {
	state *fakeState

	// failNext makes the next Within call roll back with this error.
	failNext error
}

func newFakeUoW(state *fakeState) *fakeUoW {
	return &fakeUoW{state: state}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := u.failNext; err != nil {
		u.failNext = nil
		return err
	}
	work := u.state.clone()
	if err := fn(ctx, &fakeTx{state: work}); err != nil {
		return err
	}
	u.state = work
	return nil
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) Reads() shared.CommandReads {
	return &fakeReads{state: u.state}
}

type fakeTx struct {
	state *fakeState
}

func (t *fakeTx) Bookings() shared.BookingRepository         { return &fakeBookingRepo{state: t.state} }
func (t *fakeTx) Reviews() shared.ReviewRepository           { return &fakeReviewRepo{state: t.state} }
func (t *fakeTx) Transactions() shared.TransactionRepository { return &fakeTxnRepo{state: t.state} }
func (t *fakeTx) Users() shared.UserRepository               { return &fakeUserRepo{state: t.state} }
func (t *fakeTx) Workspaces() shared.WorkspaceRepository     { return &fakeWorkspaceRepo{state: t.state} }
func (t *fakeTx) Locks() shared.AdvisoryLocks                { return &fakeLocks{state: t.state} }
func (t *fakeTx) Reads() shared.CommandReads                 { return &fakeReads{state: t.state} }
func (t *fakeTx) DB() db.DBTX                                { return nil }

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

type fakeReads struct {
	state *fakeState
}

func (r *fakeReads) WorkspaceByID(_ context.Context, id int64) (*shared.WorkspaceSnapshot, error) {
	w, ok := r.state.workspaces[id]
	if !ok {
		return nil, notFound()
	}
	cp := *w
	return &cp, nil
}

func (r *fakeReads) BookingByID(_ context.Context, id int64) (*booking.Booking, error) {
	b, ok := r.state.bookings[id]
	if !ok {
		return nil, notFound()
	}
	return b, nil
}

func (r *fakeReads) UserByID(_ context.Context, id int64) (*shared.UserSnapshot, error) {
	u, ok := r.state.users[id]
	if !ok {
		return nil, notFound()
	}
	cp := *u
	return &cp, nil
}

func (r *fakeReads) UserByEmail(_ context.Context, email string) (*shared.UserCredentials, error) {
	c, ok := r.state.credentials[email]
	if !ok {
		return nil, notFound()
	}
	cp := *c
	return &cp, nil
}

func (r *fakeReads) ReviewByID(_ context.Context, id int64) (*shared.ReviewSnapshot, error) {
	rv, ok := r.state.reviews[id]
	if !ok {
		return nil, notFound()
	}
	cp := *rv
	return &cp, nil
}

type fakeBookingRepo struct {
	state *fakeState
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) (int64, error) {
	id := r.state.allocID()
	r.state.bookings[id] = booking.Reconstruct(
		id, b.WorkspaceID(), b.UserID(), b.Period(),
		b.Status(), b.PaymentStatus(), b.TotalPrice(), b.Notes(),
		time.Now(), time.Now(),
	)
	return id, nil
}

func (r *fakeBookingRepo) FindConflict(_ context.Context, workspaceID int64, period booking.Period, excludeID *int64) (*shared.ConflictWindow, error) {
	for id, b := range r.state.bookings {
		if b.WorkspaceID() != workspaceID || !b.Status().IsActive() {
			continue
		}
		if excludeID != nil && id == *excludeID {
			continue
		}
		if period.Overlaps(b.Period()) {
			return &shared.ConflictWindow{Start: b.Period().Start(), End: b.Period().End()}, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status booking.Status) error {
	b, ok := r.state.bookings[id]
	if !ok {
		return notFound()
	}
	r.state.bookings[id] = booking.Reconstruct(
		id, b.WorkspaceID(), b.UserID(), b.Period(),
		status, b.PaymentStatus(), b.TotalPrice(), b.Notes(),
		b.CreatedAt(), time.Now(),
	)
	return nil
}

func (r *fakeBookingRepo) UpdatePaymentStatus(_ context.Context, id int64, status booking.PaymentStatus) error {
	b, ok := r.state.bookings[id]
	if !ok {
		return notFound()
	}
	r.state.bookings[id] = booking.Reconstruct(
		id, b.WorkspaceID(), b.UserID(), b.Period(),
		b.Status(), status, b.TotalPrice(), b.Notes(),
		b.CreatedAt(), time.Now(),
	)
	return nil
}

func (r *fakeBookingRepo) UpdatePeriod(_ context.Context, id int64, period booking.Period) error {
	b, ok := r.state.bookings[id]
	if !ok {
		return notFound()
	}
	r.state.bookings[id] = booking.Reconstruct(
		id, b.WorkspaceID(), b.UserID(), period,
		b.Status(), b.PaymentStatus(), b.TotalPrice(), b.Notes(),
		b.CreatedAt(), time.Now(),
	)
	return nil
}

type fakeReviewRepo struct {
	state *fakeState
}

func (r *fakeReviewRepo) Create(_ context.Context, rev *review.Review) (int64, error) {
	id := r.state.allocID()
	r.state.reviews[id] = &shared.ReviewSnapshot{
		ID:          id,
		WorkspaceID: rev.WorkspaceID(),
		UserID:      rev.UserID(),
		Rating:      rev.Rating().Value(),
	}
	return id, nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.state.reviews[id]; !ok {
		return notFound()
	}
	delete(r.state.reviews, id)
	return nil
}

type fakeTxnRepo struct {
	state *fakeState
}

func (r *fakeTxnRepo) Append(_ context.Context, userID int64, txType wallet.TransactionType, amount int64, description string, status wallet.TransactionStatus) (int64, error) {
	r.state.ledger = append(r.state.ledger, ledgerEntry{
		userID: userID,
		txType: txType,
		amount: amount,
		desc:   description,
		status: status,
	})
	return r.state.allocID(), nil
}

func (r *fakeTxnRepo) SumAmounts(_ context.Context, userID int64) (int64, error) {
	return r.state.balance(userID), nil
}

type fakeUserRepo struct {
	state *fakeState
}

func (r *fakeUserRepo) AddPoints(_ context.Context, userID int64, delta int) (int, error) {
	u, ok := r.state.users[userID]
	if !ok {
		return 0, notFound()
	}
	u.Points += delta
	return u.Points, nil
}

func (r *fakeUserRepo) SetStatus(_ context.Context, userID int64, status loyalty.Status) error {
	u, ok := r.state.users[userID]
	if !ok {
		return notFound()
	}
	u.Status = status
	return nil
}

func (r *fakeUserRepo) SetPoints(_ context.Context, userID int64, points int) error {
	u, ok := r.state.users[userID]
	if !ok {
		return notFound()
	}
	u.Points = points
	return nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, userID int64, name string, role user.Role) error {
	u, ok := r.state.users[userID]
	if !ok {
		return notFound()
	}
	u.Name = name
	u.Role = role
	return nil
}

func (r *fakeUserRepo) Create(_ context.Context, email, name, passwordHash string, role user.Role) (int64, error) {
	if _, exists := r.state.credentials[email]; exists {
		return 0, infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
	}
	id := r.state.allocID()
	r.state.users[id] = &shared.UserSnapshot{
		ID: id, Email: email, Name: name, Role: role, Status: loyalty.StatusBronze,
	}
	r.state.credentials[email] = &shared.UserCredentials{
		ID: id, Email: email, Name: name, PasswordHash: passwordHash, Role: role,
	}
	return id, nil
}

func (r *fakeUserRepo) UpdateLastSignedIn(_ context.Context, _ int64) error {
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, userID int64) error {
	if _, ok := r.state.users[userID]; !ok {
		return notFound()
	}
	for _, e := range r.state.ledger {
		if e.userID == userID {
			return infra.WrapRepoErr("user is referenced", nil, infra.KindForeignKeyViolated)
		}
	}
	delete(r.state.users, userID)
	return nil
}

type fakeWorkspaceRepo struct {
	state *fakeState
}

func (r *fakeWorkspaceRepo) RecalcRating(_ context.Context, workspaceID int64) error {
	if _, ok := r.state.workspaces[workspaceID]; !ok {
		return notFound()
	}
	r.state.ratingRecalcs = append(r.state.ratingRecalcs, workspaceID)
	return nil
}

func (r *fakeWorkspaceRepo) Create(_ context.Context, params shared.CreateWorkspaceParams) (int64, error) {
	id := r.state.allocID()
	r.state.workspaces[id] = &shared.WorkspaceSnapshot{
		ID:           id,
		Name:         params.Name,
		PricePerHour: params.PricePerHour,
		IsAvailable:  params.IsAvailable,
	}
	return id, nil
}

func (r *fakeWorkspaceRepo) Update(_ context.Context, id int64, params shared.UpdateWorkspaceParams) error {
	w, ok := r.state.workspaces[id]
	if !ok {
		return notFound()
	}
	if params.Name != nil {
		w.Name = *params.Name
	}
	if params.PricePerHour != nil {
		w.PricePerHour = *params.PricePerHour
	}
	if params.IsAvailable != nil {
		w.IsAvailable = *params.IsAvailable
	}
	return nil
}

func (r *fakeWorkspaceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.state.workspaces[id]; !ok {
		return notFound()
	}
	delete(r.state.workspaces, id)
	return nil
}

type fakeLocks struct {
	state *fakeState
}

func (l *fakeLocks) LockWorkspace(_ context.Context, workspaceID int64) error {
	l.state.lockLog = append(l.state.lockLog, "workspace")
	return nil
}

func (l *fakeLocks) LockWallet(_ context.Context, userID int64) error {
	l.state.lockLog = append(l.state.lockLog, "wallet")
	return nil
}

// noopSlotCache satisfies the invalidator without a redis instance.
type noopSlotCache struct{}

func (noopSlotCache) Invalidate(_ context.Context, _ int64, _ ...time.Time) {}

// fakeCodeStore keeps top-up codes in a map; TTL is ignored and expiry is
// simulated by deleting entries.
type fakeCodeStore struct {
	codes map[string]shared.PendingTopUp
}

func newFakeCodeStore() *fakeCodeStore {
	return &fakeCodeStore{codes: make(map[string]shared.PendingTopUp)}
}

func (s *fakeCodeStore) Save(_ context.Context, code string, pending shared.PendingTopUp, _ time.Duration) error {
	s.codes[code] = pending
	return nil
}

func (s *fakeCodeStore) Consume(_ context.Context, code string) (*shared.PendingTopUp, error) {
	pending, ok := s.codes[code]
	if !ok {
		return nil, nil
	}
	delete(s.codes, code)
	return &pending, nil
}
