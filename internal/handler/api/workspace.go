package api

import (
	"net/http"

	"beautyspace/internal/infra"
	"beautyspace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WorkspaceHandler struct {
	workspaceQueries queries.WorkspaceQueries
	reviewQueries    queries.ReviewQueries
}

func NewWorkspaceHandler(workspaceQueries queries.WorkspaceQueries, reviewQueries queries.ReviewQueries) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceQueries: workspaceQueries,
		reviewQueries:    reviewQueries,
	}
}

// @Summary List workspaces
// @Description All workspaces ordered by rating
// @Tags workspaces
// @Produce json
// @Success 200 {array} queries.WorkspaceView
// @Router /workspaces [get]
func (h *WorkspaceHandler) List(c *gin.Context) {
	items, err := h.workspaceQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if items == nil {
		items = []*queries.WorkspaceView{}
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Get workspace
// @Tags workspaces
// @Produce json
// @Param id path int true "Workspace ID"
// @Success 200 {object} queries.WorkspaceView
// @Failure 404 {object} map[string]string
// @Router /workspaces/{id} [get]
func (h *WorkspaceHandler) Get(c *gin.Context) {
	workspaceID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workspace id",
		})
		return
	}

	view, err := h.workspaceQueries.GetByID(c.Request.Context(), workspaceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Workspace not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List workspace reviews
// @Tags workspaces
// @Produce json
// @Param id path int true "Workspace ID"
// @Success 200 {array} queries.ReviewListItem
// @Router /workspaces/{id}/reviews [get]
func (h *WorkspaceHandler) ListReviews(c *gin.Context) {
	workspaceID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workspace id",
		})
		return
	}

	items, err := h.reviewQueries.ListByWorkspace(c.Request.Context(), workspaceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if items == nil {
		items = []*queries.ReviewListItem{}
	}

	c.JSON(http.StatusOK, items)
}
