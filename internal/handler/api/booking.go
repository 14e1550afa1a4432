package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"beautyspace/internal/domain/booking"
	reqdto "beautyspace/internal/handler/dto/request"
	resdto "beautyspace/internal/handler/dto/response"
	"beautyspace/internal/handler/middleware"
	"beautyspace/internal/usecase/commands"
	"beautyspace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a workspace slot; payment is taken from the wallet immediately
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateBookingRequest true "Booking request"
// @Success 201 {object} response.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), commands.CreateBookingRequest{
		WorkspaceID: req.WorkspaceID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Notes:       req.Notes,
	}, userID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		BookingID:     result.BookingID,
		TotalPrice:    result.TotalPrice,
		AwardedPoints: result.AwardedPoints,
		LoyaltyStatus: result.NewStatus.String(),
	})
}

// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.BookingListItem
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if items == nil {
		items = []*queries.BookingListItem{}
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Cancel booking
// @Description Cancel an own booking; a paid booking is refunded in full
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} response.CancelBookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking id",
		})
		return
	}

	refunded, err := h.bookingCommands.CancelBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.CancelBookingResponse{Refunded: refunded})
}

// @Summary Reschedule booking
// @Description Move an own booking to a new slot without changing the price
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body request.RescheduleBookingRequest true "New slot"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/reschedule [patch]
func (h *BookingHandler) Reschedule(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking id",
		})
		return
	}

	var req reqdto.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.bookingCommands.RescheduleBooking(c.Request.Context(), bookingID, userID, commands.RescheduleBookingRequest{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Occupied slots for a day
// @Description Taken intervals of one workspace for one date (YYYY-MM-DD)
// @Tags bookings
// @Produce json
// @Param id path int true "Workspace ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} queries.OccupiedSlot
// @Failure 400 {object} map[string]string
// @Router /workspaces/{id}/occupied-slots [get]
func (h *BookingHandler) OccupiedSlots(c *gin.Context) {
	workspaceID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workspace id",
		})
		return
	}

	date := c.Query("date")
	slots, err := h.bookingQueries.OccupiedSlots(c.Request.Context(), workspaceID, date)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Date must be formatted as YYYY-MM-DD",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, slots)
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrWorkspaceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Workspace not found",
		})
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrWorkspaceUnavailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Workspace is not available",
		})
	case errors.Is(err, commands.ErrSlotConflict):
		detail := slotConflictDetail(err)
		c.JSON(http.StatusConflict, gin.H{
			"error":  "Time slot is already booked",
			"detail": detail,
		})
	case errors.Is(err, commands.ErrInsufficientFunds):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":  "Insufficient funds",
			"detail": insufficientFundsDetail(err),
		})
	case errors.Is(err, booking.ErrInvalidPeriod):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "End time must be after start time",
		})
	case errors.Is(err, booking.ErrPeriodInPast):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Start time cannot be in the past",
		})
	case errors.Is(err, booking.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Booking belongs to another user",
		})
	case errors.Is(err, booking.ErrTerminalState):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Booking is already cancelled or completed",
		})
	case errors.Is(err, booking.ErrNotMovable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Only active bookings can be rescheduled",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func slotConflictDetail(err error) *resdto.SlotConflictDetail {
	var conflictErr *commands.SlotConflictError
	if !errors.As(err, &conflictErr) {
		return nil
	}
	return &resdto.SlotConflictDetail{
		Start: conflictErr.Start.Format(time.RFC3339),
		End:   conflictErr.End.Format(time.RFC3339),
	}
}

func insufficientFundsDetail(err error) *resdto.InsufficientFundsDetail {
	var fundsErr *commands.InsufficientFundsError
	if !errors.As(err, &fundsErr) {
		return nil
	}
	return &resdto.InsufficientFundsDetail{
		Balance:  fundsErr.Balance,
		Required: fundsErr.Required,
	}
}

func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
