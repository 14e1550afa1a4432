package request

type CreateReviewRequest struct {
	WorkspaceID int64  `json:"workspace_id" binding:"required,gt=0"`
	BookingID   *int64 `json:"booking_id" binding:"omitempty,gt=0"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Comment     string `json:"comment" binding:"max=1000"`
}
