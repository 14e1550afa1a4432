package response

type CreateBookingResponse struct {
	BookingID     int64  `json:"booking_id"`
	TotalPrice    int64  `json:"total_price"`
	AwardedPoints int    `json:"awarded_points"`
	LoyaltyStatus string `json:"loyalty_status"`
}

type CancelBookingResponse struct {
	Refunded bool `json:"refunded"`
}

// SlotConflictDetail accompanies a 409 so the client can show the taken
// window.
type SlotConflictDetail struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type InsufficientFundsDetail struct {
	Balance  int64 `json:"balance"`
	Required int64 `json:"required"`
}
