package mapping

import (
	"github.com/bizsuite/erp_backend/internal/core/domain"
	"github.com/bizsuite/erp_backend/internal/models"
)

// ToModelSalesOrder converts a domain.SalesOrder header to its database model.
func ToModelSalesOrder(d domain.SalesOrder) models.SalesOrder {
	return models.SalesOrder{
		ID:        d.ID,
		CompanyID: d.CompanyID,
		OrderDate: d.OrderDate,
		DueDate:   d.DueDate,
		Notes:     d.Notes,
	}
}

// ToDomainSalesOrder converts a models.SalesOrder header; items are attached separately.
func ToDomainSalesOrder(m models.SalesOrder) domain.SalesOrder {
	return domain.SalesOrder{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		OrderDate: m.OrderDate,
		DueDate:   m.DueDate,
		Notes:     m.Notes,
	}
}

// ToDomainSalesOrderItem converts a single item model.
func ToDomainSalesOrderItem(m models.SalesOrderItem) domain.SalesOrderItem {
	return domain.SalesOrderItem{
		ID:           m.ID,
		SalesOrderID: m.SalesOrderID,
		ProductID:    m.ProductID,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
	}
}

// ToDomainSalesOrderItemSlice converts a slice of item models.
func ToDomainSalesOrderItemSlice(ms []models.SalesOrderItem) []domain.SalesOrderItem {
	ds := make([]domain.SalesOrderItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSalesOrderItem(m)
	}
	return ds
}
