package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizsuite/erp_backend/internal/core/ports/services"
	"github.com/bizsuite/erp_backend/internal/dto"
	"github.com/bizsuite/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests related to products and categories.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(productService portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: productService}
}

// registerProductRoutes registers routes related to products and categories.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:productID", h.getProduct)
		products.PUT("/:productID", h.updateProduct)
		products.DELETE("/:productID", h.deleteProduct)
	}

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:categoryID/products", h.listCategoryProducts)
	}
}

// createProduct godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input or duplicate SKU"
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(100)
// @Success 200 {array} dto.ProductResponse
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), params.Limit, params.Skip)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list products")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductResponse(products))
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{productID} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}

	product, err := h.productService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve product")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update a product
// @Description Applies a partial update; omitted fields are left unchanged
// @Tags products
// @Accept json
// @Produce json
// @Param productID path int true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{productID} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), productID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Param productID path int true "Product ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Product is referenced by order items"
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{productID} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	productID, ok := parseIDParam(c, "productID")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), productID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete product")
		return
	}

	c.Status(http.StatusNoContent)
}

// createCategory godoc
// @Summary Create a new product category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /categories [post]
func (h *productHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.productService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List product categories
// @Tags categories
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(100)
// @Success 200 {array} dto.CategoryResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *productHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	categories, err := h.productService.ListCategories(c.Request.Context(), params.Limit, params.Skip)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// listCategoryProducts godoc
// @Summary List the products in a category
// @Tags categories
// @Produce json
// @Param categoryID path int true "Category ID"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(100)
// @Success 200 {array} dto.ProductResponse
// @Security BearerAuth
// @Router /categories/{categoryID}/products [get]
func (h *productHandler) listCategoryProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categoryID, ok := parseIDParam(c, "categoryID")
	if !ok {
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	products, err := h.productService.ListProductsByCategory(c.Request.Context(), categoryID, params.Limit, params.Skip)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list category products")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductResponse(products))
}
