package api

import (
	"errors"
	"net/http"

	domreview "beautyspace/internal/domain/review"
	reqdto "beautyspace/internal/handler/dto/request"
	resdto "beautyspace/internal/handler/dto/response"
	"beautyspace/internal/handler/httperr"
	"beautyspace/internal/handler/middleware"
	"beautyspace/internal/pkg/errs"
	"beautyspace/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
}

func NewReviewHandler(reviewCommands commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
	}
}

// @Summary Create review
// @Description Review a workspace; awards a flat loyalty bonus
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateReviewRequest true "Review request"
// @Success 201 {object} response.CreateReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing in context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.reviewCommands.CreateReview(c.Request.Context(), commands.CreateReviewRequest{
		WorkspaceID: req.WorkspaceID,
		BookingID:   req.BookingID,
		Rating:      req.Rating,
		Comment:     req.Comment,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWorkspaceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Workspace not found", nil)
		case errors.Is(err, commands.ErrReviewBookingInvalid):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking does not match the review", nil)
		case errors.Is(err, domreview.ErrInvalidRating):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Rating must be between 1 and 5", nil)
		case errors.Is(err, domreview.ErrCommentTooLong):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Comment is too long", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateReviewResponse{
		ReviewID:      result.ReviewID,
		AwardedPoints: result.AwardedPoints,
		LoyaltyStatus: result.NewStatus.String(),
	})
}

// @Summary Delete review
// @Description Delete an own review; admins may delete any review
// @Tags reviews
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing in context"), "Internal server error", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	reviewID, err := parseIDParam(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review id", nil)
		return
	}

	if err := h.reviewCommands.DeleteReview(c.Request.Context(), reviewID, userID, role); err != nil {
		switch {
		case errors.Is(err, commands.ErrReviewNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
		case errors.Is(err, commands.ErrReviewNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Review belongs to another user", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
