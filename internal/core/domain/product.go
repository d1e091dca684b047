package domain

import "github.com/shopspring/decimal"

// Product is a sellable item identified by a unique SKU.
type Product struct {
	ID          int64            `json:"id"`
	SKU         string           `json:"sku"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	CostPrice   *decimal.Decimal `json:"costPrice,omitempty"`
	IsActive    bool             `json:"isActive"`
	CategoryID  *int64           `json:"categoryID,omitempty"`
}

// Category groups products; Parent allows a simple hierarchy.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parentID,omitempty"`
}
