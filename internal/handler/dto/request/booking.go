package request

import "time"

type CreateBookingRequest struct {
	WorkspaceID int64     `json:"workspace_id" binding:"required,gt=0"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Notes       string    `json:"notes" binding:"max=500"`
}

type RescheduleBookingRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}
