package review

import "time"

type Review struct {
	id          int64
	workspaceID int64
	userID      int64
	bookingID   *int64
	rating      Rating
	comment     Comment
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReview(workspaceID, userID int64, bookingID *int64, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		workspaceID: workspaceID,
		userID:      userID,
		bookingID:   bookingID,
		rating:      rating,
		comment:     comment,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func (r *Review) ID() int64            { return r.id }
func (r *Review) WorkspaceID() int64   { return r.workspaceID }
func (r *Review) UserID() int64        { return r.userID }
func (r *Review) BookingID() *int64    { return r.bookingID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
