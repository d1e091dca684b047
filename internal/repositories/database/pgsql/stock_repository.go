package pgsql

import (
	"context"
	"errors"

	"github.com/bizsuite/erp_backend/internal/apperrors"
	"github.com/bizsuite/erp_backend/internal/core/domain"
	portsrepo "github.com/bizsuite/erp_backend/internal/core/ports/repositories"
	"github.com/bizsuite/erp_backend/internal/models"
	"github.com/bizsuite/erp_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStockRepository struct {
	BaseRepository
}

func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &PgxStockRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StockRepositoryFacade = (*PgxStockRepository)(nil)

func (r *PgxStockRepository) CreateWarehouse(ctx context.Context, warehouse domain.Warehouse) (*domain.Warehouse, error) {
	query := `
		INSERT INTO warehouses (name, location)
		VALUES ($1, $2)
		RETURNING id;
	`
	m := models.Warehouse{Name: warehouse.Name, Location: warehouse.Location}
	err := r.Pool.QueryRow(ctx, query, m.Name, m.Location).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("warehouse with this name already exists")
		}
		return nil, apperrors.NewAppError(500, "failed to create warehouse", err)
	}
	saved := mapping.ToDomainWarehouse(m)
	return &saved, nil
}

func (r *PgxStockRepository) FindWarehouseByID(ctx context.Context, warehouseID int64) (*domain.Warehouse, error) {
	query := `SELECT id, name, location FROM warehouses WHERE id = $1;`
	var m models.Warehouse
	err := r.Pool.QueryRow(ctx, query, warehouseID).Scan(&m.ID, &m.Name, &m.Location)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find warehouse", err)
	}
	warehouse := mapping.ToDomainWarehouse(m)
	return &warehouse, nil
}

func (r *PgxStockRepository) ListWarehouses(ctx context.Context, limit, offset int) ([]domain.Warehouse, error) {
	query := `SELECT id, name, location FROM warehouses ORDER BY id LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list warehouses", err)
	}
	defer rows.Close()

	warehouses := []models.Warehouse{}
	for rows.Next() {
		var m models.Warehouse
		if err := rows.Scan(&m.ID, &m.Name, &m.Location); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan warehouse row", err)
		}
		warehouses = append(warehouses, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating warehouse rows", err)
	}
	return mapping.ToDomainWarehouseSlice(warehouses), nil
}

func (r *PgxStockRepository) CreateStockMovement(ctx context.Context, movement domain.StockMovement) (*domain.StockMovement, error) {
	query := `
		INSERT INTO stock_movements (product_id, warehouse_id, change, reason, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	m := models.StockMovement{
		ProductID:   movement.ProductID,
		WarehouseID: movement.WarehouseID,
		Change:      movement.Change,
		Reason:      movement.Reason,
		OccurredAt:  movement.OccurredAt,
	}
	err := r.Pool.QueryRow(ctx, query, m.ProductID, m.WarehouseID, m.Change, m.Reason, m.OccurredAt).
		Scan(&m.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.NewNotFoundError("stock movement references a missing product or warehouse")
		}
		return nil, apperrors.NewAppError(500, "failed to create stock movement", err)
	}
	saved := mapping.ToDomainStockMovement(m)
	return &saved, nil
}

// ListStockMovements returns movements newest first; productID 0 means no filter.
func (r *PgxStockRepository) ListStockMovements(ctx context.Context, productID int64, limit, offset int) ([]domain.StockMovement, error) {
	query := `
		SELECT id, product_id, warehouse_id, change, reason, occurred_at
		FROM stock_movements
		WHERE ($1 = 0 OR product_id = $1)
		ORDER BY occurred_at DESC, id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, productID, normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list stock movements", err)
	}
	defer rows.Close()

	movements := []models.StockMovement{}
	for rows.Next() {
		var m models.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.WarehouseID, &m.Change, &m.Reason, &m.OccurredAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stock movement row", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating stock movement rows", err)
	}
	return mapping.ToDomainStockMovementSlice(movements), nil
}
