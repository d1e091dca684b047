package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizsuite/erp_backend/internal/core/ports/services"
	"github.com/bizsuite/erp_backend/internal/dto"
	"github.com/bizsuite/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(employeeService portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: employeeService}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:employeeID", h.getEmployee)
		employees.PUT("/:employeeID", h.updateEmployee)
		employees.DELETE("/:employeeID", h.deleteEmployee)
	}
}

// createEmployee godoc
// @Summary Create a new employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input or duplicate employee code"
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(100)
// @Success 200 {array} dto.EmployeeResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), params.Limit, params.Skip)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEmployeeResponse(employees))
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Tags employees
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /employees/{employeeID} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employeeID, ok := parseIDParam(c, "employeeID")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Applies a partial update; omitted fields are left unchanged
// @Tags employees
// @Accept json
// @Produce json
// @Param employeeID path int true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /employees/{employeeID} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employeeID, ok := parseIDParam(c, "employeeID")
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Tags employees
// @Param employeeID path int true "Employee ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /employees/{employeeID} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employeeID, ok := parseIDParam(c, "employeeID")
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), employeeID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete employee")
		return
	}

	c.Status(http.StatusNoContent)
}
