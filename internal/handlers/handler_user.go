package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/dto"
)

type userHandler struct {
	userService ports.UserSvc
}

func registerUserRoutes(rg *gin.RouterGroup, userService ports.UserSvc) {
	h := &userHandler{userService: userService}

	users := rg.Group("/users")
	{
		users.GET("", h.listEmployees)
		users.POST("", h.createEmployee)
		users.GET("/:uid", h.getEmployee)
		users.PUT("/:uid", h.updateEmployee)
		users.POST("/:uid/disable", h.disableUser)
	}
	rg.GET("/me", getMe)
}

// listEmployees godoc
// @Summary List all employees
// @Tags users
// @Produce json
// @Success 200 {object} dto.DataResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listEmployees(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	employees, err := h.userService.ListEmployees(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(employees))
}

// createEmployee godoc
// @Summary Create an employee with an initial credential
// @Tags users
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createEmployee(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	created, err := h.userService.CreateEmployee(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, dto.Wrap(created))
}

// getEmployee godoc
// @Summary Get one employee
// @Tags users
// @Produce json
// @Param uid path string true "Employee uid"
// @Success 200 {object} dto.DataResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{uid} [get]
func (h *userHandler) getEmployee(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	employee, err := h.userService.GetEmployee(c.Request.Context(), user, c.Param("uid"))
	if err != nil {
		respondError(c, err, "Failed to load employee")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(employee))
}

// updateEmployee godoc
// @Summary Update an employee's profile, role, and status
// @Tags users
// @Accept json
// @Produce json
// @Param uid path string true "Employee uid"
// @Param employee body dto.UpdateEmployeeRequest true "New values"
// @Success 200 {object} dto.DataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{uid} [put]
func (h *userHandler) updateEmployee(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	updated, err := h.userService.UpdateEmployee(c.Request.Context(), user, c.Param("uid"), req)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, dto.Wrap(updated))
}

// disableUser godoc
// @Summary Disable an employee's access
// @Description Sets status to inactive; subsequent requests are rejected. Admins cannot disable themselves.
// @Tags users
// @Produce json
// @Param uid path string true "Employee uid"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{uid}/disable [post]
func (h *userHandler) disableUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.userService.DisableUser(c.Request.Context(), user, c.Param("uid")); err != nil {
		respondError(c, err, "Failed to disable user")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User disabled"})
}
