package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizsuite/erp_backend/internal/core/ports/services"
	"github.com/bizsuite/erp_backend/internal/dto"
	"github.com/bizsuite/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// stockHandler handles HTTP requests related to warehouses and stock movements.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

func newStockHandler(stockService portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{stockService: stockService}
}

// registerStockRoutes registers routes related to warehouses and stock movements.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := newStockHandler(stockService)

	warehouses := rg.Group("/warehouses")
	{
		warehouses.POST("", h.createWarehouse)
		warehouses.GET("", h.listWarehouses)
	}

	movements := rg.Group("/stock-movements")
	{
		movements.POST("", h.createStockMovement)
		movements.GET("", h.listStockMovements)
	}
}

// createWarehouse godoc
// @Summary Create a warehouse
// @Tags stock
// @Accept json
// @Produce json
// @Param warehouse body dto.CreateWarehouseRequest true "Warehouse details"
// @Success 201 {object} dto.WarehouseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /warehouses [post]
func (h *stockHandler) createWarehouse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWarehouse", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	warehouse, err := h.stockService.CreateWarehouse(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create warehouse")
		return
	}

	c.JSON(http.StatusCreated, dto.ToWarehouseResponse(warehouse))
}

// listWarehouses godoc
// @Summary List warehouses
// @Tags stock
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(100)
// @Success 200 {array} dto.WarehouseResponse
// @Security BearerAuth
// @Router /warehouses [get]
func (h *stockHandler) listWarehouses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	warehouses, err := h.stockService.ListWarehouses(c.Request.Context(), params.Limit, params.Skip)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list warehouses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWarehouseResponse(warehouses))
}

// createStockMovement godoc
// @Summary Record a stock movement
// @Description Records a signed stock change for a product at a warehouse.
// @Description Movements are an audit trail; they do not affect orders.
// @Tags stock
// @Accept json
// @Produce json
// @Param movement body dto.CreateStockMovementRequest true "Movement details"
// @Success 201 {object} dto.StockMovementResponse
// @Failure 400 {object} map[string]string "Zero change or invalid input"
// @Failure 404 {object} map[string]string "Product or warehouse not found"
// @Security BearerAuth
// @Router /stock-movements [post]
func (h *stockHandler) createStockMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateStockMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStockMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	movement, err := h.stockService.CreateStockMovement(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record stock movement")
		return
	}

	c.JSON(http.StatusCreated, dto.ToStockMovementResponse(movement))
}

// listStockMovements godoc
// @Summary List stock movements
// @Description Lists movements newest first, optionally filtered by product
// @Tags stock
// @Produce json
// @Param productID query int false "Product ID filter"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(100)
// @Success 200 {array} dto.StockMovementResponse
// @Security BearerAuth
// @Router /stock-movements [get]
func (h *stockHandler) listStockMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListStockMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	movements, err := h.stockService.ListStockMovements(c.Request.Context(), params.ProductID, params.Limit, params.Skip)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list stock movements")
		return
	}

	c.JSON(http.StatusOK, dto.ToListStockMovementResponse(movements))
}
