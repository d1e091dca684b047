package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrder represents an order header together with its line items.
// Items are lifecycle-bound to the order; deleting the order removes them.
type SalesOrder struct {
	ID        int64            `json:"id"`
	CompanyID int64            `json:"companyID"`
	OrderDate time.Time        `json:"orderDate"`
	DueDate   *time.Time       `json:"dueDate,omitempty"`
	Notes     string           `json:"notes"`
	Items     []SalesOrderItem `json:"items"`
}

// SalesOrderItem is a single line of a sales order. UnitPrice is captured at
// order time and is not re-read from the product on later reads.
type SalesOrderItem struct {
	ID           int64           `json:"id"`
	SalesOrderID int64           `json:"salesOrderID"`
	ProductID    int64           `json:"productID"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
}

// TotalAmount computes the order total as the exact decimal sum of
// quantity x unit price over all items.
func (o *SalesOrder) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
