package repositories

import (
	"context"

	"github.com/bizsuite/erp_backend/internal/core/domain"
)

// OrderReader defines read operations for sales order data.
type OrderReader interface {
	// FindOrderByID retrieves an order with its items in insertion order.
	FindOrderByID(ctx context.Context, orderID int64) (*domain.SalesOrder, error)

	// ListOrders retrieves orders in primary-key order, each with its items attached.
	ListOrders(ctx context.Context, limit, offset int) ([]domain.SalesOrder, error)

	// ListOrdersByCompany retrieves the orders placed by one company.
	ListOrdersByCompany(ctx context.Context, companyID int64, limit, offset int) ([]domain.SalesOrder, error)
}

// OrderWriter defines write operations for sales order data.
type OrderWriter interface {
	// SaveOrderWithItems persists the order header and all its items in one
	// database transaction, preserving item order. Returns the order with
	// generated identifiers attached.
	SaveOrderWithItems(ctx context.Context, order domain.SalesOrder) (*domain.SalesOrder, error)

	// DeleteOrder removes an order; its items are removed with it.
	DeleteOrder(ctx context.Context, orderID int64) error
}

// OrderRepositoryFacade combines all order-related repository interfaces.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
