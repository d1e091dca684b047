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

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `id, sku, name, description, unit_price, cost_price, is_active, category_id`

func (r *PgxProductRepository) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (sku, name, description, unit_price, cost_price, is_active, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	m := models.Product{
		SKU:         product.SKU,
		Name:        product.Name,
		Description: product.Description,
		UnitPrice:   product.UnitPrice,
		CostPrice:   product.CostPrice,
		IsActive:    product.IsActive,
		CategoryID:  product.CategoryID,
	}
	err := r.Pool.QueryRow(ctx, query,
		m.SKU, m.Name, m.Description, m.UnitPrice, m.CostPrice, m.IsActive, m.CategoryID,
	).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("product with this SKU already exists")
		}
		if isForeignKeyViolation(err) {
			return nil, apperrors.NewNotFoundError("product references a missing category")
		}
		return nil, apperrors.NewAppError(500, "failed to create product", err)
	}
	saved := mapping.ToDomainProduct(m)
	return &saved, nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`
	return r.scanOneProduct(r.Pool.QueryRow(ctx, query, productID))
}

func (r *PgxProductRepository) FindProductBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1;`
	return r.scanOneProduct(r.Pool.QueryRow(ctx, query, sku))
}

// FindProductsByIDs returns the products that exist, keyed by ID. Callers
// detect missing products by absence from the map.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []int64) (map[int64]domain.Product, error) {
	products := make(map[int64]domain.Product, len(productIDs))
	if len(productIDs) == 0 {
		return products, nil
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products by IDs", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanProductRow(rows)
		if err != nil {
			return nil, err
		}
		products[m.ID] = mapping.ToDomainProduct(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}
	return products, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id LIMIT $1 OFFSET $2;`
	return r.queryProducts(ctx, query, normalizeLimit(limit), normalizeOffset(offset))
}

func (r *PgxProductRepository) ListProductsByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY id LIMIT $2 OFFSET $3;`
	return r.queryProducts(ctx, query, categoryID, normalizeLimit(limit), normalizeOffset(offset))
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products
		SET sku = $2, name = $3, description = $4, unit_price = $5, cost_price = $6, is_active = $7, category_id = $8
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		product.ID, product.SKU, product.Name, product.Description,
		product.UnitPrice, product.CostPrice, product.IsActive, product.CategoryID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("product with this SKU already exists")
		}
		if isForeignKeyViolation(err) {
			return apperrors.NewNotFoundError("product references a missing category")
		}
		return apperrors.NewAppError(500, "failed to update product", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE id = $1;`, productID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewConflictError("product is referenced by order items and cannot be deleted")
		}
		return apperrors.NewAppError(500, "failed to delete product", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (name, parent_id)
		VALUES ($1, $2)
		RETURNING id;
	`
	m := models.Category{Name: category.Name, ParentID: category.ParentID}
	err := r.Pool.QueryRow(ctx, query, m.Name, m.ParentID).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("category with this name already exists")
		}
		if isForeignKeyViolation(err) {
			return nil, apperrors.NewNotFoundError("category references a missing parent")
		}
		return nil, apperrors.NewAppError(500, "failed to create category", err)
	}
	saved := mapping.ToDomainCategory(m)
	return &saved, nil
}

func (r *PgxProductRepository) ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	query := `SELECT id, name, parent_id FROM categories ORDER BY id LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list categories", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var m models.Category
		if err := rows.Scan(&m.ID, &m.Name, &m.ParentID); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row", err)
		}
		categories = append(categories, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows", err)
	}
	return mapping.ToDomainCategorySlice(categories), nil
}

func (r *PgxProductRepository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		m, err := scanProductRow(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}
	return mapping.ToDomainProductSlice(products), nil
}

func (r *PgxProductRepository) scanOneProduct(row pgx.Row) (*domain.Product, error) {
	var m models.Product
	err := row.Scan(&m.ID, &m.SKU, &m.Name, &m.Description, &m.UnitPrice, &m.CostPrice, &m.IsActive, &m.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find product", err)
	}
	product := mapping.ToDomainProduct(m)
	return &product, nil
}

func scanProductRow(rows pgx.Rows) (models.Product, error) {
	var m models.Product
	if err := rows.Scan(&m.ID, &m.SKU, &m.Name, &m.Description, &m.UnitPrice, &m.CostPrice, &m.IsActive, &m.CategoryID); err != nil {
		return models.Product{}, apperrors.NewAppError(500, "failed to scan product row", err)
	}
	return m, nil
}
