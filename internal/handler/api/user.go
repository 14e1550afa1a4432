package api

import (
	"net/http"

	"beautyspace/internal/handler/middleware"
	"beautyspace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userQueries queries.UserQueries
}

func NewUserHandler(userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{
		userQueries: userQueries,
	}
}

// @Summary Own booking statistics
// @Description Booking counters and the ledger-sum balance
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.UserStatsView
// @Router /users/me/stats [get]
func (h *UserHandler) MyStats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	stats, err := h.userQueries.Stats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
