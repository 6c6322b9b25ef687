package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/dto"
)

type rotaHandler struct {
	rotaService ports.RotaSvc
}

func registerRotaRoutes(rg *gin.RouterGroup, rotaService ports.RotaSvc) {
	h := &rotaHandler{rotaService: rotaService}

	templates := rg.Group("/shift-templates")
	{
		templates.POST("", h.createTemplate)
		templates.GET("", h.listTemplates)
		templates.PUT("/:id", h.updateTemplate)
		templates.DELETE("/:id", h.deleteTemplate)
	}

	rota := rg.Group("/rota")
	{
		rota.GET("", h.weeklyRota)
		rota.POST("", h.assignShift)
		rota.DELETE("/:id", h.removeShift)
		rota.POST("/publish", h.publish)
	}
	rg.GET("/my-schedule", h.mySchedule)
}

// createTemplate godoc
// @Summary Create a shift template
// @Tags rota
// @Accept json
// @Produce json
// @Param template body dto.ShiftTemplateRequest true "Template details"
// @Success 201 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /shift-templates [post]
func (h *rotaHandler) createTemplate(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.ShiftTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	tpl, err := h.rotaService.CreateTemplate(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, err, "Failed to create shift template")
		return
	}
	c.JSON(http.StatusCreated, dto.Wrap(tpl))
}

// listTemplates godoc
// @Summary List shift templates
// @Tags rota
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Security BearerAuth
// @Router /shift-templates [get]
func (h *rotaHandler) listTemplates(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	templates, err := h.rotaService.ListTemplates(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to list shift templates")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(templates))
}

// updateTemplate godoc
// @Summary Update a shift template
// @Tags rota
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param template body dto.ShiftTemplateRequest true "New template values"
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /shift-templates/{id} [put]
func (h *rotaHandler) updateTemplate(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ShiftTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	tpl, err := h.rotaService.UpdateTemplate(c.Request.Context(), user, id, req)
	if err != nil {
		respondError(c, err, "Failed to update shift template")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(tpl))
}

// deleteTemplate godoc
// @Summary Delete a shift template
// @Description Removes the template and every scheduled shift that uses it.
// @Tags rota
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /shift-templates/{id} [delete]
func (h *rotaHandler) deleteTemplate(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.rotaService.DeleteTemplate(c.Request.Context(), user, id); err != nil {
		respondError(c, err, "Failed to delete shift template")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Shift template deleted"})
}

// weeklyRota godoc
// @Summary Draft rota for a date range
// @Description Every scheduled shift in range plus the projected labor cost.
// @Tags rota
// @Produce json
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.DataResponse{data=dto.RotaResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /rota [get]
func (h *rotaHandler) weeklyRota(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	entries, totalCost, err := h.rotaService.WeeklyRota(c.Request.Context(), user, start, end)
	if err != nil {
		respondError(c, err, "Failed to load rota")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(dto.RotaResponse{Shifts: entries, TotalLaborCost: totalCost}))
}

// assignShift godoc
// @Summary Assign an employee to a shift
// @Tags rota
// @Accept json
// @Produce json
// @Param shift body dto.AssignShiftRequest true "Assignment"
// @Success 201 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Employee already scheduled that day"
// @Security BearerAuth
// @Router /rota [post]
func (h *rotaHandler) assignShift(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.AssignShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	shift, err := h.rotaService.AssignShift(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, err, "Failed to assign shift")
		return
	}
	c.JSON(http.StatusCreated, dto.Wrap(shift))
}

// removeShift godoc
// @Summary Remove a scheduled shift
// @Tags rota
// @Produce json
// @Param id path int true "Scheduled shift ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /rota/{id} [delete]
func (h *rotaHandler) removeShift(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.rotaService.RemoveShift(c.Request.Context(), user, id); err != nil {
		respondError(c, err, "Failed to remove shift")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Shift removed"})
}

// publish godoc
// @Summary Publish the rota for a date range
// @Description Marks every shift in range visible to staff. Safe to repeat.
// @Tags rota
// @Accept json
// @Produce json
// @Param range body dto.PublishRotaRequest true "Inclusive date range"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /rota/publish [post]
func (h *rotaHandler) publish(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.PublishRotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if err := h.rotaService.PublishRange(c.Request.Context(), user, start, end); err != nil {
		respondError(c, err, "Failed to publish rota")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Rota published"})
}

// mySchedule godoc
// @Summary The caller's published shifts in a date range
// @Tags rota
// @Produce json
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.DataResponse
// @Security BearerAuth
// @Router /my-schedule [get]
func (h *rotaHandler) mySchedule(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	entries, err := h.rotaService.MySchedule(c.Request.Context(), user, start, end)
	if err != nil {
		respondError(c, err, "Failed to load schedule")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(entries))
}
