package queries

import (
	"time"
)

// Read models (DTO for read side)

type WorkspaceView struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	PricePerHour int64     `json:"price_per_hour"`
	PricePerDay  int64     `json:"price_per_day"`
	ImageURL     string    `json:"image_url"`
	IsAvailable  bool      `json:"is_available"`
	Rating       float64   `json:"rating"`
	ReviewCount  int32     `json:"review_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookingListItem struct {
	ID             int64     `json:"id"`
	WorkspaceID    int64     `json:"workspace_id"`
	WorkspaceName  string    `json:"workspace_name"`
	WorkspaceType  string    `json:"workspace_type"`
	WorkspaceImage string    `json:"workspace_image"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	TotalPrice     int64     `json:"total_price"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// OccupiedSlot is a wall-clock interval within one day, formatted HH:MM.
type OccupiedSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ReviewListItem struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
	UserID      int64     `json:"user_id"`
	UserName    string    `json:"user_name"`
	BookingID   *int64    `json:"booking_id,omitempty"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

type TransactionView struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type UserProfileView struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	Points          int       `json:"points"`
	Status          string    `json:"status"`
	DiscountPercent int       `json:"discount_percent"`
	PointsToNext    int       `json:"points_to_next_tier"`
	CreatedAt       time.Time `json:"created_at"`
}

type UserStatsView struct {
	TotalBookings     int64 `json:"total_bookings"`
	ActiveBookings    int64 `json:"active_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
	Balance           int64 `json:"balance"`
}

type AdminUserListItem struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	Points       int        `json:"points"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	LastSignedIn *time.Time `json:"last_signed_in,omitempty"`
}

type AdminBookingListItem struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	WorkspaceID   int64     `json:"workspace_id"`
	WorkspaceName string    `json:"workspace_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	TotalPrice    int64     `json:"total_price"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

type AdminReviewListItem struct {
	ID            int64     `json:"id"`
	WorkspaceID   int64     `json:"workspace_id"`
	WorkspaceName string    `json:"workspace_name"`
	UserID        int64     `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

type AdminStatsView struct {
	TotalUsers      int64 `json:"total_users"`
	TotalWorkspaces int64 `json:"total_workspaces"`
	TotalBookings   int64 `json:"total_bookings"`
	ActiveBookings  int64 `json:"active_bookings"`
	TotalReviews    int64 `json:"total_reviews"`
	TotalRevenue    int64 `json:"total_revenue"`
}
