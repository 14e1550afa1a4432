package response

import "time"

type TransactionResponse struct {
	TransactionID int64 `json:"transaction_id"`
	Balance       int64 `json:"balance"`
}

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

type TopUpResponse struct {
	Code   string `json:"code"`
	Amount int64  `json:"amount"`
	// PNG bytes, base64-encoded by the JSON marshaller.
	QRCode    []byte    `json:"qr_code"`
	ExpiresAt time.Time `json:"expires_at"`
}
