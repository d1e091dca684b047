package models

import "github.com/shopspring/decimal"

// Product is the database row for a product.
type Product struct {
	ID          int64            `db:"id"`
	SKU         string           `db:"sku"`
	Name        string           `db:"name"`
	Description string           `db:"description"`
	UnitPrice   decimal.Decimal  `db:"unit_price"`
	CostPrice   *decimal.Decimal `db:"cost_price"`
	IsActive    bool             `db:"is_active"`
	CategoryID  *int64           `db:"category_id"`
}

// Category is the database row for a product category.
type Category struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	ParentID *int64 `db:"parent_id"`
}
