package domain

import "time"

// Warehouse is a physical stock location.
type Warehouse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// StockMovement records a signed quantity change for a product at a warehouse.
// Order creation does not emit stock movements; they are recorded explicitly.
type StockMovement struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"productID"`
	WarehouseID int64     `json:"warehouseID"`
	Change      int       `json:"change"`
	Reason      string    `json:"reason"`
	OccurredAt  time.Time `json:"occurredAt"`
}
