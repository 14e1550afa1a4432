//go:build e2e

package wallet_test

import (
	"net/http"
	"testing"

	"beautyspace/internal/handler/dto/request"
	"beautyspace/internal/handler/dto/response"
	"beautyspace/internal/usecase/queries"
	"beautyspace/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	transactionsURL = "/api/transactions"
	topUpsURL       = "/api/topups"
	confirmURL      = "/api/topups/confirm"
)

type WalletSuite struct {
	e2e.SharedSuite
}

func TestWalletSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(WalletSuite))
}

func (s *WalletSuite) TestLedger() {
	s.Run("balance is the sum of ledger entries", func() {
		t := s.T()

		token, _ := e2e.RegisterUser(t, s.Router, "ledger@example.com", "Ledger", "password123")
		e2e.Deposit(t, s.Router, token, 3000)

		w := e2e.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, request.CreateTransactionRequest{
			Type:        "withdrawal",
			Amount:      1000,
			Description: "cash out",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res response.TransactionResponse
		e2e.DecodeResponseBody(t, w.Body, &res)
		require.Equal(t, int64(2000), res.Balance)

		lw := e2e.PerformRequest(t, s.Router, http.MethodGet, transactionsURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code)
		var items []queries.TransactionView
		e2e.DecodeResponseBody(t, lw.Body, &items)

		expected := []queries.TransactionView{
			{Type: "withdrawal", Amount: -1000, Status: "completed", Description: "cash out"},
			{Type: "deposit", Amount: 3000, Status: "completed", Description: "test deposit"},
		}
		opts := cmpopts.IgnoreFields(queries.TransactionView{}, "ID", "CreatedAt")
		require.Empty(t, cmp.Diff(expected, items, opts))
	})

	s.Run("withdrawal beyond the balance is refused", func() {
		t := s.T()

		token, _ := e2e.RegisterUser(t, s.Router, "broke@example.com", "Broke", "password123")
		e2e.Deposit(t, s.Router, token, 100)

		w := e2e.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, request.CreateTransactionRequest{
			Type:   "withdrawal",
			Amount: 500,
		}, token)
		require.Equal(t, http.StatusPaymentRequired, w.Code, w.Body.String())
		require.Equal(t, int64(100), e2e.GetBalance(t, s.Router, token))
	})
}

func (s *WalletSuite) TestTopUp() {
	s.Run("top-up credits only on confirmation and the code is single-use", func() {
		t := s.T()

		token, _ := e2e.RegisterUser(t, s.Router, "topup@example.com", "TopUp", "password123")

		w := e2e.PerformRequest(t, s.Router, http.MethodPost, topUpsURL, request.CreateTopUpRequest{
			Amount: 2500,
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var intent response.TopUpResponse
		e2e.DecodeResponseBody(t, w.Body, &intent)
		require.NotEmpty(t, intent.Code)
		require.NotEmpty(t, intent.QRCode)

		// Nothing on the ledger yet
		require.Equal(t, int64(0), e2e.GetBalance(t, s.Router, token))

		cw := e2e.PerformRequest(t, s.Router, http.MethodPost, confirmURL, request.ConfirmTopUpRequest{
			Code: intent.Code,
		}, token)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())

		var confirmed response.TransactionResponse
		e2e.DecodeResponseBody(t, cw.Body, &confirmed)
		require.Equal(t, int64(2500), confirmed.Balance)

		// Second confirmation must fail
		rw := e2e.PerformRequest(t, s.Router, http.MethodPost, confirmURL, request.ConfirmTopUpRequest{
			Code: intent.Code,
		}, token)
		require.Equal(t, http.StatusNotFound, rw.Code, rw.Body.String())
		require.Equal(t, int64(2500), e2e.GetBalance(t, s.Router, token))
	})

	s.Run("top-up above the limit is refused", func() {
		t := s.T()

		token, _ := e2e.RegisterUser(t, s.Router, "whale@example.com", "Whale", "password123")

		w := e2e.PerformRequest(t, s.Router, http.MethodPost, topUpsURL, request.CreateTopUpRequest{
			Amount: s.Config.TopUp.MaxAmount + 1,
		}, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}
