package models

import "time"

// Warehouse is the database row for a warehouse.
type Warehouse struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Location string `db:"location"`
}

// StockMovement is the database row for a stock movement.
type StockMovement struct {
	ID          int64     `db:"id"`
	ProductID   int64     `db:"product_id"`
	WarehouseID int64     `db:"warehouse_id"`
	Change      int       `db:"change"`
	Reason      string    `db:"reason"`
	OccurredAt  time.Time `db:"occurred_at"`
}
