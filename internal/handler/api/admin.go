package api

import (
	"errors"
	"net/http"

	reqdto "beautyspace/internal/handler/dto/request"
	"beautyspace/internal/usecase/commands"
	"beautyspace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminCommands commands.AdminCommands
	adminQueries  queries.AdminQueries
}

func NewAdminHandler(adminCommands commands.AdminCommands, adminQueries queries.AdminQueries) *AdminHandler {
	return &AdminHandler{
		adminCommands: adminCommands,
		adminQueries:  adminQueries,
	}
}

// @Summary Marketplace statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.AdminStatsView
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminQueries.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.AdminUserListItem
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	items, err := h.adminQueries.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if items == nil {
		items = []*queries.AdminUserListItem{}
	}

	c.JSON(http.StatusOK, items)
}

// @Summary List all bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.AdminBookingListItem
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	items, err := h.adminQueries.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if items == nil {
		items = []*queries.AdminBookingListItem{}
	}

	c.JSON(http.StatusOK, items)
}

// @Summary List all reviews
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.AdminReviewListItem
// @Router /admin/reviews [get]
func (h *AdminHandler) ListReviews(c *gin.Context) {
	items, err := h.adminQueries.ListReviews(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if items == nil {
		items = []*queries.AdminReviewListItem{}
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Update user
// @Description Patch name, role, or points; a points change recomputes the loyalty status
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body request.AdminUpdateUserRequest true "Patch"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id} [patch]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user id",
		})
		return
	}

	var req reqdto.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.adminCommands.UpdateUser(c.Request.Context(), userID, commands.AdminUpdateUserRequest{
		Name:   req.Name,
		Role:   req.Role,
		Points: req.Points,
	})
	if err != nil {
		h.respondAdminError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete user
// @Description Refused while the user still owns bookings or ledger entries
// @Tags admin
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user id",
		})
		return
	}

	if err := h.adminCommands.DeleteUser(c.Request.Context(), userID); err != nil {
		h.respondAdminError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Create workspace
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.AdminCreateWorkspaceRequest true "Workspace"
// @Success 201 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Router /admin/workspaces [post]
func (h *AdminHandler) CreateWorkspace(c *gin.Context) {
	var req reqdto.AdminCreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	workspaceID, err := h.adminCommands.CreateWorkspace(c.Request.Context(), commands.AdminCreateWorkspaceRequest{
		Name:         req.Name,
		Description:  req.Description,
		Type:         req.Type,
		PricePerHour: req.PricePerHour,
		PricePerDay:  req.PricePerDay,
		ImageURL:     req.ImageURL,
		IsAvailable:  req.IsAvailable,
	})
	if err != nil {
		h.respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"workspace_id": workspaceID,
	})
}

// @Summary Update workspace
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path int true "Workspace ID"
// @Param request body request.AdminUpdateWorkspaceRequest true "Patch"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/workspaces/{id} [patch]
func (h *AdminHandler) UpdateWorkspace(c *gin.Context) {
	workspaceID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workspace id",
		})
		return
	}

	var req reqdto.AdminUpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.adminCommands.UpdateWorkspace(c.Request.Context(), workspaceID, commands.AdminUpdateWorkspaceRequest{
		Name:         req.Name,
		Description:  req.Description,
		Type:         req.Type,
		PricePerHour: req.PricePerHour,
		PricePerDay:  req.PricePerDay,
		ImageURL:     req.ImageURL,
		IsAvailable:  req.IsAvailable,
	})
	if err != nil {
		h.respondAdminError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete workspace
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Workspace ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/workspaces/{id} [delete]
func (h *AdminHandler) DeleteWorkspace(c *gin.Context) {
	workspaceID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workspace id",
		})
		return
	}

	if err := h.adminCommands.DeleteWorkspace(c.Request.Context(), workspaceID); err != nil {
		h.respondAdminError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update booking status
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body request.AdminUpdateBookingStatusRequest true "Status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id}/status [patch]
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	bookingID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking id",
		})
		return
	}

	var req reqdto.AdminUpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminCommands.UpdateBookingStatus(c.Request.Context(), bookingID, req.Status); err != nil {
		h.respondAdminError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update booking payment status
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body request.AdminUpdatePaymentStatusRequest true "Payment status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id}/payment-status [patch]
func (h *AdminHandler) UpdateBookingPaymentStatus(c *gin.Context) {
	bookingID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking id",
		})
		return
	}

	var req reqdto.AdminUpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminCommands.UpdateBookingPaymentStatus(c.Request.Context(), bookingID, req.Status); err != nil {
		h.respondAdminError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) respondAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
	case errors.Is(err, commands.ErrWorkspaceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Workspace not found",
		})
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrUserHasRecords):
		c.JSON(http.StatusConflict, gin.H{
			"error": "User still has bookings or transactions",
		})
	case errors.Is(err, commands.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid role",
		})
	case errors.Is(err, commands.ErrInvalidWorkspaceType):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workspace type",
		})
	case errors.Is(err, commands.ErrInvalidBookingState):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking state",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
