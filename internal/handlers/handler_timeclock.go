package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/dto"
)

type timeClockHandler struct {
	timeClockService ports.TimeClockSvc
}

func registerTimeClockRoutes(rg *gin.RouterGroup, timeClockService ports.TimeClockSvc) {
	h := &timeClockHandler{timeClockService: timeClockService}

	timeClock := rg.Group("/time-clock")
	{
		timeClock.POST("/clock-in", h.clockIn)
		timeClock.POST("/clock-out", h.clockOut)
		timeClock.GET("/status", h.status)
	}
	rg.GET("/time-entries", h.listEntries)
}

// clockIn godoc
// @Summary Clock in
// @Tags time-clock
// @Produce json
// @Success 201 {object} dto.DataResponse
// @Failure 409 {object} dto.ErrorResponse "Already clocked in"
// @Security BearerAuth
// @Router /time-clock/clock-in [post]
func (h *timeClockHandler) clockIn(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	entry, err := h.timeClockService.ClockIn(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to clock in")
		return
	}
	c.JSON(http.StatusCreated, dto.Wrap(entry))
}

// clockOut godoc
// @Summary Clock out
// @Tags time-clock
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Failure 404 {object} dto.ErrorResponse "No open entry"
// @Security BearerAuth
// @Router /time-clock/clock-out [post]
func (h *timeClockHandler) clockOut(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	entry, err := h.timeClockService.ClockOut(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to clock out")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(entry))
}

// status godoc
// @Summary Current clock status
// @Description Returns the open entry, or null when clocked out.
// @Tags time-clock
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Security BearerAuth
// @Router /time-clock/status [get]
func (h *timeClockHandler) status(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	entry, err := h.timeClockService.Status(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to load clock status")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(entry))
}

// listEntries godoc
// @Summary List time entries in a date range
// @Tags time-clock
// @Produce json
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.DataResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /time-entries [get]
func (h *timeClockHandler) listEntries(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	entries, err := h.timeClockService.ListEntries(c.Request.Context(), user, start, end)
	if err != nil {
		respondError(c, err, "Failed to list time entries")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(entries))
}
