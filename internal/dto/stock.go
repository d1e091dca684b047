package dto

import (
	"time"

	"github.com/bizsuite/erp_backend/internal/core/domain"
)

// CreateWarehouseRequest defines the data needed to create a warehouse.
type CreateWarehouseRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

// WarehouseResponse defines the data returned for a warehouse.
type WarehouseResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// CreateStockMovementRequest records a signed stock change for a product.
type CreateStockMovementRequest struct {
	ProductID   int64  `json:"productID" binding:"required"`
	WarehouseID int64  `json:"warehouseID" binding:"required"`
	Change      int    `json:"change" binding:"required"`
	Reason      string `json:"reason"`
}

// StockMovementResponse defines the data returned for a stock movement.
type StockMovementResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"productID"`
	WarehouseID int64     `json:"warehouseID"`
	Change      int       `json:"change"`
	Reason      string    `json:"reason"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// ListStockMovementsParams defines query parameters for listing stock movements.
type ListStockMovementsParams struct {
	Skip      int   `form:"skip,default=0"`
	Limit     int   `form:"limit,default=100"`
	ProductID int64 `form:"productID"`
}

// ToWarehouseResponse converts a domain.Warehouse to its response DTO.
func ToWarehouseResponse(w *domain.Warehouse) WarehouseResponse {
	return WarehouseResponse{ID: w.ID, Name: w.Name, Location: w.Location}
}

// ToListWarehouseResponse converts a slice of domain.Warehouse to response DTOs.
func ToListWarehouseResponse(warehouses []domain.Warehouse) []WarehouseResponse {
	res := make([]WarehouseResponse, len(warehouses))
	for i, w := range warehouses {
		res[i] = ToWarehouseResponse(&w)
	}
	return res
}

// ToStockMovementResponse converts a domain.StockMovement to its response DTO.
func ToStockMovementResponse(m *domain.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		WarehouseID: m.WarehouseID,
		Change:      m.Change,
		Reason:      m.Reason,
		OccurredAt:  m.OccurredAt,
	}
}

// ToListStockMovementResponse converts a slice of domain.StockMovement to response DTOs.
func ToListStockMovementResponse(movements []domain.StockMovement) []StockMovementResponse {
	res := make([]StockMovementResponse, len(movements))
	for i := range movements {
		res[i] = ToStockMovementResponse(&movements[i])
	}
	return res
}
