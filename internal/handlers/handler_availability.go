package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/dto"
)

type availabilityHandler struct {
	availabilityService ports.AvailabilitySvc
}

func registerAvailabilityRoutes(rg *gin.RouterGroup, availabilityService ports.AvailabilitySvc) {
	h := &availabilityHandler{availabilityService: availabilityService}

	availability := rg.Group("/availability")
	{
		availability.POST("", h.submit)
		availability.GET("", h.listForUser)
		availability.GET("/pending", h.listPending)
		availability.GET("/rota", h.listOverlapping)
		availability.POST("/:id/approve", h.approve)
		availability.POST("/:id/reject", h.reject)
		availability.DELETE("/:id", h.delete)
	}
}

// submit godoc
// @Summary Submit a time-off request
// @Tags availability
// @Accept json
// @Produce json
// @Param request body dto.CreateAvailabilityRequest true "Requested window"
// @Success 201 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /availability [post]
func (h *availabilityHandler) submit(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	saved, err := h.availabilityService.Submit(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, err, "Failed to submit availability request")
		return
	}
	c.JSON(http.StatusCreated, dto.Wrap(saved))
}

// listForUser godoc
// @Summary List time-off requests for one employee
// @Description Staff see their own; admins may pass user_uid to read anyone's.
// @Tags availability
// @Produce json
// @Param user_uid query string false "Target employee uid (admin only)"
// @Success 200 {object} dto.DataResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /availability [get]
func (h *availabilityHandler) listForUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	requests, err := h.availabilityService.ListForUser(c.Request.Context(), user, c.Query("user_uid"))
	if err != nil {
		respondError(c, err, "Failed to list availability requests")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(requests))
}

// listPending godoc
// @Summary List pending time-off requests
// @Tags availability
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /availability/pending [get]
func (h *availabilityHandler) listPending(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	requests, err := h.availabilityService.ListPending(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to list pending requests")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(requests))
}

// listOverlapping godoc
// @Summary List time-off overlapping a date range
// @Description Used while building the rota. Restricted to approved requests unless approved_only=false asks for the raw queue.
// @Tags availability
// @Produce json
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Param approved_only query bool false "Set false to include pending requests"
// @Success 200 {object} dto.DataResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /availability/rota [get]
func (h *availabilityHandler) listOverlapping(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	approvedOnly := c.Query("approved_only") != "false"
	requests, err := h.availabilityService.ListOverlapping(c.Request.Context(), user, start, end, approvedOnly)
	if err != nil {
		respondError(c, err, "Failed to list overlapping requests")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(requests))
}

// approve godoc
// @Summary Approve a time-off request
// @Tags availability
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} dto.DataResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /availability/{id}/approve [post]
func (h *availabilityHandler) approve(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	approved, err := h.availabilityService.Approve(c.Request.Context(), user, id)
	if err != nil {
		respondError(c, err, "Failed to approve request")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(approved))
}

// reject godoc
// @Summary Reject a time-off request
// @Description Rejection removes the request; it no longer appears in any listing.
// @Tags availability
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /availability/{id}/reject [post]
func (h *availabilityHandler) reject(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.availabilityService.Reject(c.Request.Context(), user, id); err != nil {
		respondError(c, err, "Failed to reject request")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Request rejected"})
}

// delete godoc
// @Summary Withdraw a time-off request
// @Tags availability
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /availability/{id} [delete]
func (h *availabilityHandler) delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.availabilityService.Delete(c.Request.Context(), user, id); err != nil {
		respondError(c, err, "Failed to delete request")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Request deleted"})
}
