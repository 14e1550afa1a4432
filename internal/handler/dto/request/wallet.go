package request

type CreateTransactionRequest struct {
	Type        string `json:"type" binding:"required,oneof=deposit payment refund withdrawal"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description" binding:"max=255"`
}

type CreateTopUpRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

type ConfirmTopUpRequest struct {
	Code string `json:"code" binding:"required,uuid"`
}
