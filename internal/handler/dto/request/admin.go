package request

type AdminUpdateUserRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=100"`
	Role   *string `json:"role" binding:"omitempty,oneof=user specialist admin"`
	Points *int    `json:"points" binding:"omitempty,gte=0"`
}

type AdminCreateWorkspaceRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	Description  string `json:"description" binding:"max=2000"`
	Type         string `json:"type" binding:"required,oneof=hairdresser makeup manicure cosmetology massage"`
	PricePerHour int64  `json:"price_per_hour" binding:"required,gt=0"`
	PricePerDay  int64  `json:"price_per_day" binding:"required,gt=0"`
	ImageURL     string `json:"image_url" binding:"omitempty,url"`
	IsAvailable  bool   `json:"is_available"`
}

type AdminUpdateWorkspaceRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description  *string `json:"description" binding:"omitempty,max=2000"`
	Type         *string `json:"type" binding:"omitempty,oneof=hairdresser makeup manicure cosmetology massage"`
	PricePerHour *int64  `json:"price_per_hour" binding:"omitempty,gt=0"`
	PricePerDay  *int64  `json:"price_per_day" binding:"omitempty,gt=0"`
	ImageURL     *string `json:"image_url" binding:"omitempty,url"`
	IsAvailable  *bool   `json:"is_available"`
}

type AdminUpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

type AdminUpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid refunded"`
}
