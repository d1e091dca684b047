package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bizsuite/erp_backend/internal/apperrors"
	"github.com/bizsuite/erp_backend/internal/core/domain"
	portsrepo "github.com/bizsuite/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/bizsuite/erp_backend/internal/core/ports/services"
	"github.com/bizsuite/erp_backend/internal/dto"
	"github.com/bizsuite/erp_backend/internal/middleware"
)

type productService struct {
	productRepo portsrepo.ProductRepositoryFacade
}

func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

// CreateProduct persists a new product. SKU uniqueness is checked up front so
// the caller gets a clean duplicate error rather than a raw constraint failure.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.productRepo.FindProductBySKU(ctx, req.SKU)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for existing SKU", slog.String("error", err.Error()))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: product with this SKU already exists", apperrors.ErrDuplicate)
	}

	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
	}

	product := domain.Product{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		CostPrice:   req.CostPrice,
		IsActive:    true,
		CategoryID:  req.CategoryID,
	}

	saved, err := s.productRepo.CreateProduct(ctx, product)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to create product", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Product created", slog.Int64("product_id", saved.ID))
	return saved, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find product by ID", slog.String("error", err.Error()), slog.Int64("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	products, err := s.productRepo.ListProducts(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) ListProductsByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	products, err := s.productRepo.ListProductsByCategory(ctx, categoryID, limit, offset)
	if err != nil {
		logger.Error("Failed to list products by category", slog.String("error", err.Error()), slog.Int64("category_id", categoryID))
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}
	return products, nil
}

// UpdateProduct applies a partial update; nil fields are left unchanged.
func (s *productService) UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
		}
		product.UnitPrice = *req.UnitPrice
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to update product", slog.String("error", err.Error()), slog.Int64("product_id", productID))
		}
		return nil, err
	}

	logger.Info("Product updated", slog.Int64("product_id", productID))
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to delete product", slog.String("error", err.Error()), slog.Int64("product_id", productID))
		}
		return err
	}
	logger.Info("Product deleted", slog.Int64("product_id", productID))
	return nil
}

func (s *productService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category := domain.Category{
		Name:     req.Name,
		ParentID: req.ParentID,
	}

	saved, err := s.productRepo.CreateCategory(ctx, category)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to create category", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Category created", slog.Int64("category_id", saved.ID))
	return saved, nil
}

func (s *productService) ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	categories, err := s.productRepo.ListCategories(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
