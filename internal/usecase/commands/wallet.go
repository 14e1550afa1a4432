package commands

import (
	"context"
	"log/slog"
	"time"

	"beautyspace/internal/domain/wallet"
	"beautyspace/internal/pkg/clock"
	"beautyspace/internal/pkg/config"
	"beautyspace/internal/pkg/errs"
	"beautyspace/internal/pkg/qr"
	"beautyspace/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransactionType = errs.New("invalid transaction type")
	ErrInvalidAmount          = errs.New("amount must be positive")
	ErrTopUpAmountTooLarge    = errs.New("top-up amount exceeds the allowed maximum")
	ErrTopUpCodeInvalid       = errs.New("top-up code is unknown or expired")
)

// TopUpCodeStore parks pending deposits outside the ledger until confirmed.
type TopUpCodeStore interface {
	Save(ctx context.Context, code string, pending shared.PendingTopUp, ttl time.Duration) error
	Consume(ctx context.Context, code string) (*shared.PendingTopUp, error)
}

type CreateTransactionRequest struct {
	Type        wallet.TransactionType
	Amount      int64
	Description string
}

type CreateTransactionResult struct {
	TransactionID int64
	NewBalance    int64
}

type TopUpIntent struct {
	Code      string
	Amount    int64
	QRCodePNG []byte
	ExpiresAt time.Time
}

type ConfirmTopUpResult struct {
	TransactionID int64
	NewBalance    int64
}

type WalletCommands interface {
	// CreateTransaction appends a ledger entry directly. Debits check funds
	// under the wallet lock; credits always succeed.
	CreateTransaction(ctx context.Context, req CreateTransactionRequest, userID int64) (*CreateTransactionResult, error)
	// CreateTopUp issues a payment code and QR image; nothing reaches the
	// ledger until the code is confirmed.
	CreateTopUp(ctx context.Context, userID, amount int64) (*TopUpIntent, error)
	ConfirmTopUp(ctx context.Context, code string) (*ConfirmTopUpResult, error)
}

type walletUseCaseImpl struct {
	uow    shared.UnitOfWork
	codes  TopUpCodeStore
	clock  clock.Clock
	topUps config.TopUpConfig
}

func NewWalletUseCase(uow shared.UnitOfWork, codes TopUpCodeStore, clk clock.Clock, topUps config.TopUpConfig) WalletCommands {
	return &walletUseCaseImpl{uow: uow, codes: codes, clock: clk, topUps: topUps}
}

func (uc *walletUseCaseImpl) CreateTransaction(ctx context.Context, req CreateTransactionRequest, userID int64) (*CreateTransactionResult, error) {
	if !req.Type.IsValid() {
		return nil, ErrInvalidTransactionType
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	amount := req.Type.SignAmount(req.Amount)

	var result CreateTransactionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if !req.Type.IsCredit() {
			if err := tx.Locks().LockWallet(ctx, userID); err != nil {
				return err
			}
			balance, err := tx.Transactions().SumAmounts(ctx, userID)
			if err != nil {
				return err
			}
			if balance < req.Amount {
				return errs.Mark(&InsufficientFundsError{Balance: balance, Required: req.Amount}, ErrInsufficientFunds)
			}
		}

		id, err := tx.Transactions().Append(ctx, userID, req.Type, amount, req.Description, wallet.StatusCompleted)
		if err != nil {
			return err
		}

		balance, err := tx.Transactions().SumAmounts(ctx, userID)
		if err != nil {
			return err
		}

		result = CreateTransactionResult{TransactionID: id, NewBalance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *walletUseCaseImpl) CreateTopUp(ctx context.Context, userID, amount int64) (*TopUpIntent, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount > uc.topUps.MaxAmount {
		return nil, ErrTopUpAmountTooLarge
	}

	code := uuid.NewString()
	pending := shared.PendingTopUp{UserID: userID, Amount: amount}
	if err := uc.codes.Save(ctx, code, pending, uc.topUps.CodeTTL); err != nil {
		return nil, err
	}

	png, err := qr.EncodeTopUpPayload(code, amount)
	if err != nil {
		return nil, err
	}

	return &TopUpIntent{
		Code:      code,
		Amount:    amount,
		QRCodePNG: png,
		ExpiresAt: uc.clock.Now().Add(uc.topUps.CodeTTL),
	}, nil
}

func (uc *walletUseCaseImpl) ConfirmTopUp(ctx context.Context, code string) (*ConfirmTopUpResult, error) {
	pending, err := uc.codes.Consume(ctx, code)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, ErrTopUpCodeInvalid
	}

	var result ConfirmTopUpResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Transactions().Append(ctx, pending.UserID,
			wallet.TypeDeposit, wallet.TypeDeposit.SignAmount(pending.Amount),
			"Balance top-up", wallet.StatusCompleted)
		if err != nil {
			return err
		}

		balance, err := tx.Transactions().SumAmounts(ctx, pending.UserID)
		if err != nil {
			return err
		}

		result = ConfirmTopUpResult{TransactionID: id, NewBalance: balance}
		return nil
	})
	if err != nil {
		// The code is already consumed; put it back so the deposit can be
		// retried instead of silently vanishing.
		if saveErr := uc.codes.Save(ctx, code, *pending, uc.topUps.CodeTTL); saveErr != nil {
			slog.Warn("failed to restore top-up code after ledger failure",
				"user_id", pending.UserID, "error", saveErr.Error())
		}
		return nil, err
	}
	return &result, nil
}
