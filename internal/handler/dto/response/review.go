package response

type CreateReviewResponse struct {
	ReviewID      int64  `json:"review_id"`
	AwardedPoints int    `json:"awarded_points"`
	LoyaltyStatus string `json:"loyalty_status"`
}
