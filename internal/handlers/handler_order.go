package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizsuite/erp_backend/internal/core/ports/services"
	"github.com/bizsuite/erp_backend/internal/dto"
	"github.com/bizsuite/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests related to sales orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(orderService portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: orderService}
}

// registerOrderRoutes registers routes related to sales orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:orderID", h.getOrder)
		orders.DELETE("/:orderID", h.deleteOrder)
	}
}

// createOrder godoc
// @Summary Create a sales order
// @Description Creates an order header with its line items atomically. The
// @Description total amount is computed from the items and never stored.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order with items"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string "Empty items or invalid quantity"
// @Failure 404 {object} map[string]string "Company or product not found"
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List sales orders
// @Tags orders
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(100)
// @Success 200 {array} dto.OrderResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), params.Limit, params.Skip)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list orders")
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrderResponse(orders))
}

// getOrder godoc
// @Summary Get a sales order by ID
// @Tags orders
// @Produce json
// @Param orderID path int true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} map[string]string "Order not found"
// @Security BearerAuth
// @Router /orders/{orderID} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orderID, ok := parseIDParam(c, "orderID")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve order")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// deleteOrder godoc
// @Summary Delete a sales order
// @Description Removes the order and its items together
// @Tags orders
// @Param orderID path int true "Order ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Order not found"
// @Security BearerAuth
// @Router /orders/{orderID} [delete]
func (h *orderHandler) deleteOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orderID, ok := parseIDParam(c, "orderID")
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), orderID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete order")
		return
	}

	c.Status(http.StatusNoContent)
}
