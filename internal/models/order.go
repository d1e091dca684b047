package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrder is the database row for an order header.
type SalesOrder struct {
	ID        int64      `db:"id"`
	CompanyID int64      `db:"company_id"`
	OrderDate time.Time  `db:"order_date"`
	DueDate   *time.Time `db:"due_date"`
	Notes     string     `db:"notes"`
}

// SalesOrderItem is the database row for one order line.
type SalesOrderItem struct {
	ID           int64           `db:"id"`
	SalesOrderID int64           `db:"sales_order_id"`
	ProductID    int64           `db:"product_id"`
	Quantity     int             `db:"quantity"`
	UnitPrice    decimal.Decimal `db:"unit_price"`
}
