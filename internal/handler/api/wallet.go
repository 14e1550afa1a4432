package api

import (
	"errors"
	"net/http"

	"beautyspace/internal/domain/wallet"
	reqdto "beautyspace/internal/handler/dto/request"
	resdto "beautyspace/internal/handler/dto/response"
	"beautyspace/internal/handler/httperr"
	"beautyspace/internal/handler/middleware"
	"beautyspace/internal/pkg/errs"
	"beautyspace/internal/usecase/commands"
	"beautyspace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletCommands commands.WalletCommands
	walletQueries  queries.WalletQueries
}

func NewWalletHandler(walletCommands commands.WalletCommands, walletQueries queries.WalletQueries) *WalletHandler {
	return &WalletHandler{
		walletCommands: walletCommands,
		walletQueries:  walletQueries,
	}
}

// @Summary List own transactions
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.TransactionView
// @Router /transactions [get]
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing in context"), "Internal server error", nil)
		return
	}

	items, err := h.walletQueries.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if items == nil {
		items = []*queries.TransactionView{}
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Wallet balance
// @Description Current balance, computed as the sum of all ledger entries
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.BalanceResponse
// @Router /balance [get]
func (h *WalletHandler) Balance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing in context"), "Internal server error", nil)
		return
	}

	balance, err := h.walletQueries.Balance(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.BalanceResponse{Balance: balance})
}

// @Summary Create transaction
// @Description Append a ledger entry directly; debits require sufficient funds
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateTransactionRequest true "Transaction request"
// @Success 201 {object} response.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Router /transactions [post]
func (h *WalletHandler) CreateTransaction(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing in context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.walletCommands.CreateTransaction(c.Request.Context(), commands.CreateTransactionRequest{
		Type:        wallet.TransactionType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
	}, userID)
	if err != nil {
		h.respondWalletError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.TransactionResponse{
		TransactionID: result.TransactionID,
		Balance:       result.NewBalance,
	})
}

// @Summary Start a top-up
// @Description Issue a payment code and QR image; the balance changes only on confirmation
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateTopUpRequest true "Top-up request"
// @Success 201 {object} response.TopUpResponse
// @Failure 400 {object} httperr.Response
// @Router /topups [post]
func (h *WalletHandler) CreateTopUp(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing in context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateTopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	intent, err := h.walletCommands.CreateTopUp(c.Request.Context(), userID, req.Amount)
	if err != nil {
		h.respondWalletError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.TopUpResponse{
		Code:      intent.Code,
		Amount:    intent.Amount,
		QRCode:    intent.QRCodePNG,
		ExpiresAt: intent.ExpiresAt,
	})
}

// @Summary Confirm a top-up
// @Description Consume a payment code and credit the wallet
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.ConfirmTopUpRequest true "Confirmation request"
// @Success 200 {object} response.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /topups/confirm [post]
func (h *WalletHandler) ConfirmTopUp(c *gin.Context) {
	var req reqdto.ConfirmTopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.walletCommands.ConfirmTopUp(c.Request.Context(), req.Code)
	if err != nil {
		h.respondWalletError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.TransactionResponse{
		TransactionID: result.TransactionID,
		Balance:       result.NewBalance,
	})
}

func (h *WalletHandler) respondWalletError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidTransactionType):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid transaction type", nil)
	case errors.Is(err, commands.ErrInvalidAmount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Amount must be positive", nil)
	case errors.Is(err, commands.ErrTopUpAmountTooLarge):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Top-up amount exceeds the allowed maximum", nil)
	case errors.Is(err, commands.ErrTopUpCodeInvalid):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Top-up code is unknown or expired", nil)
	case errors.Is(err, commands.ErrInsufficientFunds):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Insufficient funds", insufficientFundsDetail(err))
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
