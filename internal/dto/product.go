package dto

import (
	"github.com/bizsuite/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	SKU         string           `json:"sku" binding:"required,max=64"`
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	UnitPrice   decimal.Decimal  `json:"unitPrice" binding:"required"`
	CostPrice   *decimal.Decimal `json:"costPrice"`
	CategoryID  *int64           `json:"categoryID"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// Pointers distinguish "leave unchanged" from an explicit zero value.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	IsActive    *bool            `json:"isActive"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ID          int64            `json:"id"`
	SKU         string           `json:"sku"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	CostPrice   *decimal.Decimal `json:"costPrice,omitempty"`
	IsActive    bool             `json:"isActive"`
	CategoryID  *int64           `json:"categoryID,omitempty"`
}

// CreateCategoryRequest defines the data needed to create a product category.
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID *int64 `json:"parentID"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parentID,omitempty"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		CostPrice:   p.CostPrice,
		IsActive:    p.IsActive,
		CategoryID:  p.CategoryID,
	}
}

// ToListProductResponse converts a slice of domain.Product to response DTOs.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return res
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		ParentID: c.ParentID,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = ToCategoryResponse(&c)
	}
	return res
}
