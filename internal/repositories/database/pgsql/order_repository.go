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

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

// SaveOrderWithItems persists the order header and all its items as one
// database transaction: header insert, items in input order, commit. Any
// failure rolls back the whole unit so no header-without-items state is ever
// visible.
func (r *PgxOrderRepository) SaveOrderWithItems(ctx context.Context, order domain.SalesOrder) (*domain.SalesOrder, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored once the transaction is committed.
	defer r.Rollback(ctx, tx)

	// 1. Insert the header and obtain its generated identifier.
	modelOrder := mapping.ToModelSalesOrder(order)
	headerQuery := `
		INSERT INTO sales_orders (company_id, order_date, due_date, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, headerQuery,
		modelOrder.CompanyID,
		modelOrder.OrderDate,
		modelOrder.DueDate,
		modelOrder.Notes,
	).Scan(&modelOrder.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.NewNotFoundError("order references a missing company")
		}
		return nil, apperrors.NewAppError(500, "failed to insert sales order header", err)
	}

	// 2. Insert the items in input order, collecting generated IDs.
	itemQuery := `
		INSERT INTO sales_order_items (sales_order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	batch := &pgx.Batch{}
	for _, item := range order.Items {
		batch.Queue(itemQuery, modelOrder.ID, item.ProductID, item.Quantity, item.UnitPrice)
	}

	br := tx.SendBatch(ctx, batch)
	savedItems := make([]domain.SalesOrderItem, len(order.Items))
	for i, item := range order.Items {
		item.SalesOrderID = modelOrder.ID
		if err := br.QueryRow().Scan(&item.ID); err != nil {
			br.Close()
			if isForeignKeyViolation(err) {
				return nil, apperrors.NewNotFoundError("order item references a missing product")
			}
			return nil, apperrors.NewAppError(500, "failed to insert sales order item", err)
		}
		savedItems[i] = item
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to finalize order item batch", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	saved := mapping.ToDomainSalesOrder(modelOrder)
	saved.Items = savedItems
	return &saved, nil
}

// FindOrderByID retrieves an order with its items in insertion order.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID int64) (*domain.SalesOrder, error) {
	headerQuery := `
		SELECT id, company_id, order_date, due_date, notes
		FROM sales_orders
		WHERE id = $1;
	`
	var modelOrder models.SalesOrder
	err := r.Pool.QueryRow(ctx, headerQuery, orderID).Scan(
		&modelOrder.ID,
		&modelOrder.CompanyID,
		&modelOrder.OrderDate,
		&modelOrder.DueDate,
		&modelOrder.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find sales order by ID", err)
	}

	itemsByOrder, err := r.findItemsByOrderIDs(ctx, []int64{orderID})
	if err != nil {
		return nil, err
	}

	order := mapping.ToDomainSalesOrder(modelOrder)
	order.Items = itemsByOrder[orderID]
	return &order, nil
}

// ListOrders retrieves orders in primary-key order with items attached.
func (r *PgxOrderRepository) ListOrders(ctx context.Context, limit, offset int) ([]domain.SalesOrder, error) {
	query := `
		SELECT id, company_id, order_date, due_date, notes
		FROM sales_orders
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`
	return r.queryOrders(ctx, query, normalizeLimit(limit), normalizeOffset(offset))
}

// ListOrdersByCompany retrieves the orders placed by one company.
func (r *PgxOrderRepository) ListOrdersByCompany(ctx context.Context, companyID int64, limit, offset int) ([]domain.SalesOrder, error) {
	query := `
		SELECT id, company_id, order_date, due_date, notes
		FROM sales_orders
		WHERE company_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3;
	`
	return r.queryOrders(ctx, query, companyID, normalizeLimit(limit), normalizeOffset(offset))
}

// DeleteOrder removes an order; items cascade at the database level.
func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, orderID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM sales_orders WHERE id = $1;`, orderID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete sales order", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOrderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]domain.SalesOrder, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sales orders", err)
	}
	defer rows.Close()

	modelOrders := []models.SalesOrder{}
	for rows.Next() {
		var m models.SalesOrder
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.OrderDate, &m.DueDate, &m.Notes); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sales order row", err)
		}
		modelOrders = append(modelOrders, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sales order rows", err)
	}

	orderIDs := make([]int64, len(modelOrders))
	for i, m := range modelOrders {
		orderIDs[i] = m.ID
	}
	itemsByOrder, err := r.findItemsByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.SalesOrder, len(modelOrders))
	for i, m := range modelOrders {
		orders[i] = mapping.ToDomainSalesOrder(m)
		orders[i].Items = itemsByOrder[m.ID]
	}
	return orders, nil
}

// findItemsByOrderIDs fetches all items for the given orders, grouped by order
// ID, in insertion order. Orders without items get an empty slice.
func (r *PgxOrderRepository) findItemsByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]domain.SalesOrderItem, error) {
	itemsByOrder := make(map[int64][]domain.SalesOrderItem, len(orderIDs))
	for _, id := range orderIDs {
		itemsByOrder[id] = []domain.SalesOrderItem{}
	}
	if len(orderIDs) == 0 {
		return itemsByOrder, nil
	}

	query := `
		SELECT id, sales_order_id, product_id, quantity, unit_price
		FROM sales_order_items
		WHERE sales_order_id = ANY($1)
		ORDER BY sales_order_id, id;
	`
	rows, err := r.Pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sales order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.SalesOrderItem
		if err := rows.Scan(&m.ID, &m.SalesOrderID, &m.ProductID, &m.Quantity, &m.UnitPrice); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sales order item row", err)
		}
		itemsByOrder[m.SalesOrderID] = append(itemsByOrder[m.SalesOrderID], mapping.ToDomainSalesOrderItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sales order item rows", err)
	}

	return itemsByOrder, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 100
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
