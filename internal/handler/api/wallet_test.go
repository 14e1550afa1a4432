//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"beautyspace/internal/handler/api"
	"beautyspace/internal/handler/middleware"
	"beautyspace/internal/pkg/errs"
	"beautyspace/internal/usecase/commands"
	"beautyspace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWalletCommands returns canned results so the tests can focus on the
// HTTP translation layer.
type fakeWalletCommands struct {
	confirmResult *commands.ConfirmTopUpResult
	confirmErr    error
	createResult  *commands.CreateTransactionResult
	createErr     error
}

func (f *fakeWalletCommands) CreateTransaction(_ context.Context, _ commands.CreateTransactionRequest, _ int64) (*commands.CreateTransactionResult, error) {
	return f.createResult, f.createErr
}

func (f *fakeWalletCommands) CreateTopUp(_ context.Context, _, _ int64) (*commands.TopUpIntent, error) {
	return nil, errs.New("not used")
}

func (f *fakeWalletCommands) ConfirmTopUp(_ context.Context, _ string) (*commands.ConfirmTopUpResult, error) {
	return f.confirmResult, f.confirmErr
}

type fakeWalletQueries struct{}

func (fakeWalletQueries) ListTransactions(_ context.Context, _ int64) ([]*queries.TransactionView, error) {
	return nil, nil
}

func (fakeWalletQueries) Balance(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

func newWalletRouter(cmds commands.WalletCommands) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.ErrorHandler())
	handler := api.NewWalletHandler(cmds, fakeWalletQueries{})

	authStub := func(c *gin.Context) {
		c.Set("user_id", int64(1))
		c.Next()
	}
	engine.POST("/transactions", authStub, handler.CreateTransaction)
	engine.POST("/topups/confirm", authStub, handler.ConfirmTopUp)
	return engine
}

func performJSON(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestConfirmTopUpHandler_ErrorEnvelope(t *testing.T) {
	router := newWalletRouter(&fakeWalletCommands{confirmErr: commands.ErrTopUpCodeInvalid})

	rec := performJSON(t, router, http.MethodPost, "/topups/confirm", gin.H{"code": uuid.NewString()})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Top-up code is unknown or expired", body.Error.Message)
}

func TestCreateTransactionHandler_InsufficientFundsDetail(t *testing.T) {
	err := errs.Mark(&commands.InsufficientFundsError{Balance: 300, Required: 500}, commands.ErrInsufficientFunds)
	router := newWalletRouter(&fakeWalletCommands{createErr: err})

	rec := performJSON(t, router, http.MethodPost, "/transactions", gin.H{
		"type":   "withdrawal",
		"amount": 500,
	})
	require.Equal(t, http.StatusPaymentRequired, rec.Code)

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Detail struct {
			Balance  int64 `json:"balance"`
			Required int64 `json:"required"`
		} `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Insufficient funds", body.Error.Message)
	assert.Equal(t, int64(300), body.Detail.Balance)
	assert.Equal(t, int64(500), body.Detail.Required)
}

func TestConfirmTopUpHandler_Success(t *testing.T) {
	router := newWalletRouter(&fakeWalletCommands{
		confirmResult: &commands.ConfirmTopUpResult{TransactionID: 7, NewBalance: 2500},
	})

	rec := performJSON(t, router, http.MethodPost, "/topups/confirm", gin.H{"code": uuid.NewString()})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(2500), body["balance"])
}
