package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizsuite/erp_backend/internal/core/ports/services"
	"github.com/bizsuite/erp_backend/internal/dto"
	"github.com/bizsuite/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
	orderService   portssvc.OrderSvcFacade
}

func newCompanyHandler(companyService portssvc.CompanySvcFacade, orderService portssvc.OrderSvcFacade) *companyHandler {
	return &companyHandler{companyService: companyService, orderService: orderService}
}

// registerCompanyRoutes registers routes related to companies.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade, orderService portssvc.OrderSvcFacade) {
	h := newCompanyHandler(companyService, orderService)

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listCompanies)
		companies.GET("/:companyID", h.getCompany)
		companies.PUT("/:companyID", h.updateCompany)
		companies.DELETE("/:companyID", h.deleteCompany)
		companies.GET("/:companyID/orders", h.listCompanyOrders)
	}
}

// listCompanyOrders godoc
// @Summary List the orders placed by a company
// @Tags companies
// @Produce json
// @Param companyID path int true "Company ID"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(100)
// @Success 200 {array} dto.OrderResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{companyID}/orders [get]
func (h *companyHandler) listCompanyOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, ok := parseIDParam(c, "companyID")
	if !ok {
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	orders, err := h.orderService.ListOrdersByCompany(c.Request.Context(), companyID, params.Limit, params.Skip)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list company orders")
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrderResponse(orders))
}

// createCompany godoc
// @Summary Create a new company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} map[string]string "Invalid input or duplicate GSTIN"
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCompany", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create company")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// listCompanies godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(100)
// @Success 200 {array} dto.CompanyResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	companies, err := h.companyService.ListCompanies(c.Request.Context(), params.Limit, params.Skip)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list companies")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCompanyResponse(companies))
}

// getCompany godoc
// @Summary Get a company by ID
// @Tags companies
// @Produce json
// @Param companyID path int true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{companyID} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, ok := parseIDParam(c, "companyID")
	if !ok {
		return
	}

	company, err := h.companyService.GetCompanyByID(c.Request.Context(), companyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve company")
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// updateCompany godoc
// @Summary Update a company
// @Description Applies a partial update; omitted fields are left unchanged
// @Tags companies
// @Accept json
// @Produce json
// @Param companyID path int true "Company ID"
// @Param company body dto.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{companyID} [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, ok := parseIDParam(c, "companyID")
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCompany", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), companyID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update company")
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// deleteCompany godoc
// @Summary Delete a company
// @Tags companies
// @Param companyID path int true "Company ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{companyID} [delete]
func (h *companyHandler) deleteCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, ok := parseIDParam(c, "companyID")
	if !ok {
		return
	}

	if err := h.companyService.DeleteCompany(c.Request.Context(), companyID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete company")
		return
	}

	c.Status(http.StatusNoContent)
}
