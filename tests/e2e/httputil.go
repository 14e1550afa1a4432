//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"beautyspace/internal/handler/dto/request"
	"beautyspace/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func PerformRequest(t *testing.T, router *gin.Engine, method, url string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func DecodeResponseBody(t *testing.T, body *bytes.Buffer, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(out))
}

// RegisterUser creates an account through the public API and returns its
// access token and user id.
func RegisterUser(t *testing.T, router *gin.Engine, email, name, password string) (string, int64) {
	t.Helper()

	w := PerformRequest(t, router, http.MethodPost, "/api/auth/register", request.RegisterRequest{
		Email:    email,
		Name:     name,
		Password: password,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.AuthResponse
	DecodeResponseBody(t, w.Body, &res)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken, res.User.ID
}

// PromoteToAdmin flips a user's role directly; the public API has no path to
// the first admin.
func PromoteToAdmin(t *testing.T, pool *pgxpool.Pool, userID int64) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := pool.Exec(ctx, "UPDATE users SET role = 'admin' WHERE id = $1", userID)
	require.NoError(t, err)
}

func CreateTestWorkspace(t *testing.T, pool *pgxpool.Pool, name string, pricePerHour int64) int64 {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var workspaceID int64
	err := pool.QueryRow(ctx,
		`INSERT INTO workspaces (name, description, type, price_per_hour, price_per_day, is_available)
		 VALUES ($1, '', 'manicure', $2, $3, TRUE)
		 RETURNING id`,
		name, pricePerHour, pricePerHour*8,
	).Scan(&workspaceID)
	require.NoError(t, err)
	return workspaceID
}

// Deposit funds a wallet through the transactions API.
func Deposit(t *testing.T, router *gin.Engine, token string, amount int64) {
	t.Helper()

	w := PerformRequest(t, router, http.MethodPost, "/api/transactions", request.CreateTransactionRequest{
		Type:        "deposit",
		Amount:      amount,
		Description: "test deposit",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func GetBalance(t *testing.T, router *gin.Engine, token string) int64 {
	t.Helper()

	w := PerformRequest(t, router, http.MethodGet, "/api/balance", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.BalanceResponse
	DecodeResponseBody(t, w.Body, &res)
	return res.Balance
}
