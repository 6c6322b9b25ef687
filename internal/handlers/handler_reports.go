package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/dto"
)

type reportsHandler struct {
	timeClockService ports.TimeClockSvc
}

func registerReportRoutes(rg *gin.RouterGroup, timeClockService ports.TimeClockSvc) {
	h := &reportsHandler{timeClockService: timeClockService}

	reports := rg.Group("/reports")
	{
		reports.GET("/timesheet", h.timesheet)
		reports.GET("/timesheet/export", h.timesheetExport)
		reports.GET("/labor-vs-sales", h.laborVsSales)
	}
}

// timesheet godoc
// @Summary Per-employee approved hours and pay over a date range
// @Tags reports
// @Produce json
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.DataResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/timesheet [get]
func (h *reportsHandler) timesheet(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	rows, err := h.timeClockService.TimesheetReport(c.Request.Context(), user, start, end)
	if err != nil {
		respondError(c, err, "Failed to build timesheet")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(rows))
}

// timesheetExport godoc
// @Summary Download the timesheet as CSV
// @Description Same aggregation as the timesheet report, rendered as a CSV attachment. Auth may be supplied via the token query parameter since download links cannot set headers.
// @Tags reports
// @Produce text/csv
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Param token query string false "Bearer token"
// @Success 200 {string} string "CSV body"
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/timesheet/export [get]
func (h *reportsHandler) timesheetExport(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	csvBody, err := h.timeClockService.TimesheetCSV(c.Request.Context(), user, start, end)
	if err != nil {
		respondError(c, err, "Failed to export timesheet")
		return
	}

	filename := fmt.Sprintf("timesheet_%s_to_%s.csv", start.Format("2006-01-02"), end.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(csvBody))
}

// laborVsSales godoc
// @Summary Scheduled labor cost against sales for one day
// @Tags reports
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.DataResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/labor-vs-sales [get]
func (h *reportsHandler) laborVsSales(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}
	ref := time.Now()
	if date != nil {
		ref = *date
	}
	report, err := h.timeClockService.LaborVsSales(c.Request.Context(), user, ref)
	if err != nil {
		respondError(c, err, "Failed to build labor report")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(report))
}
