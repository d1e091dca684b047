package dto

import (
	"time"

	"github.com/bizsuite/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one line of a sales order to create. UnitPrice is the
// price captured at order time, not a lookup of the current product price.
type OrderItemRequest struct {
	ProductID int64           `json:"productID" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateOrderRequest defines the payload to create a sales order with its items.
type CreateOrderRequest struct {
	CompanyID int64              `json:"companyID" binding:"required"`
	OrderDate string             `json:"orderDate" binding:"required,datetime=2006-01-02"`
	DueDate   string             `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Notes     string             `json:"notes"`
	Items     []OrderItemRequest `json:"items" binding:"required"`
}

// ToDomainItems converts the request items to domain order items, preserving order.
func (r *CreateOrderRequest) ToDomainItems() []domain.SalesOrderItem {
	items := make([]domain.SalesOrderItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.SalesOrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	return items
}

// OrderItemResponse defines the data returned for an order line.
type OrderItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productID"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// OrderResponse defines the data returned for a sales order, including the
// computed total amount.
type OrderResponse struct {
	ID          int64               `json:"id"`
	CompanyID   int64               `json:"companyID"`
	OrderDate   time.Time           `json:"orderDate"`
	DueDate     *time.Time          `json:"dueDate,omitempty"`
	Notes       string              `json:"notes"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
}

// ToOrderResponse converts a domain.SalesOrder to its response DTO.
func ToOrderResponse(o *domain.SalesOrder) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	return OrderResponse{
		ID:          o.ID,
		CompanyID:   o.CompanyID,
		OrderDate:   o.OrderDate,
		DueDate:     o.DueDate,
		Notes:       o.Notes,
		Items:       items,
		TotalAmount: o.TotalAmount(),
	}
}

// ToListOrderResponse converts a slice of domain.SalesOrder to response DTOs.
func ToListOrderResponse(orders []domain.SalesOrder) []OrderResponse {
	res := make([]OrderResponse, len(orders))
	for i := range orders {
		res[i] = ToOrderResponse(&orders[i])
	}
	return res
}
