package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/dto"
)

type activityHandler struct {
	activityService ports.ActivitySvc
}

func registerActivityRoutes(rg *gin.RouterGroup, activityService ports.ActivitySvc) {
	h := &activityHandler{activityService: activityService}
	rg.GET("/activity-logs", h.listEntries)
}

// listEntries godoc
// @Summary Audit trail, newest first
// @Tags activity
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /activity-logs [get]
func (h *activityHandler) listEntries(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	entries, err := h.activityService.ListEntries(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to list activity logs")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(entries))
}
