// Package wallet defines the append-only ledger vocabulary. A user's balance
// is always the sum of their transaction amounts; there is no stored balance
// field anywhere in the system.
package wallet

type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypePayment    TransactionType = "payment"
	TypeRefund     TransactionType = "refund"
	TypeWithdrawal TransactionType = "withdrawal"
)

func (t TransactionType) String() string {
	return string(t)
}

func (t TransactionType) IsValid() bool {
	switch t {
	case TypeDeposit, TypePayment, TypeRefund, TypeWithdrawal:
		return true
	default:
		return false
	}
}

// Credits: deposit and refund carry positive amounts; payment and withdrawal
// carry negative amounts. The ledger primitive stores whatever signed amount
// it is given — callers own the convention.
func (t TransactionType) IsCredit() bool {
	return t == TypeDeposit || t == TypeRefund
}

// SignAmount applies the conventional sign for this type to a magnitude.
func (t TransactionType) SignAmount(magnitude int64) int64 {
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if t.IsCredit() {
		return magnitude
	}
	return -magnitude
}

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

func (s TransactionStatus) String() string {
	return string(s)
}

func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}
