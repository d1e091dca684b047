package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizsuite/erp_backend/internal/apperrors"
	"github.com/bizsuite/erp_backend/internal/core/domain"
	portsrepo "github.com/bizsuite/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/bizsuite/erp_backend/internal/core/ports/services"
	"github.com/bizsuite/erp_backend/internal/dto"
	"github.com/bizsuite/erp_backend/internal/middleware"
)

// stockService records warehouses and signed stock movements. Movements are an
// audit trail only; they do not touch sales orders or the ledger.
type stockService struct {
	stockRepo   portsrepo.StockRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
}

func NewStockService(stockRepo portsrepo.StockRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade) portssvc.StockSvcFacade {
	return &stockService{stockRepo: stockRepo, productRepo: productRepo}
}

func (s *stockService) CreateWarehouse(ctx context.Context, req dto.CreateWarehouseRequest) (*domain.Warehouse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	warehouse := domain.Warehouse{
		Name:     req.Name,
		Location: req.Location,
	}

	saved, err := s.stockRepo.CreateWarehouse(ctx, warehouse)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to create warehouse", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Warehouse created", slog.Int64("warehouse_id", saved.ID))
	return saved, nil
}

func (s *stockService) ListWarehouses(ctx context.Context, limit, offset int) ([]domain.Warehouse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	warehouses, err := s.stockRepo.ListWarehouses(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list warehouses", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}
	return warehouses, nil
}

// CreateStockMovement records a signed stock change. The referenced product
// and warehouse must exist; a zero change is rejected.
func (s *stockService) CreateStockMovement(ctx context.Context, req dto.CreateStockMovementRequest) (*domain.StockMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Change == 0 {
		return nil, fmt.Errorf("%w: change must not be zero", apperrors.ErrValidation)
	}

	if _, err := s.productRepo.FindProductByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %d not found", apperrors.ErrNotFound, req.ProductID)
		}
		logger.Error("Failed to fetch product for stock movement", slog.String("error", err.Error()))
		return nil, err
	}
	if _, err := s.stockRepo.FindWarehouseByID(ctx, req.WarehouseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: warehouse %d not found", apperrors.ErrNotFound, req.WarehouseID)
		}
		logger.Error("Failed to fetch warehouse for stock movement", slog.String("error", err.Error()))
		return nil, err
	}

	movement := domain.StockMovement{
		ProductID:   req.ProductID,
		WarehouseID: req.WarehouseID,
		Change:      req.Change,
		Reason:      req.Reason,
		OccurredAt:  time.Now(),
	}

	saved, err := s.stockRepo.CreateStockMovement(ctx, movement)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to create stock movement", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Stock movement recorded",
		slog.Int64("movement_id", saved.ID),
		slog.Int64("product_id", saved.ProductID),
		slog.Int("change", saved.Change),
	)
	return saved, nil
}

func (s *stockService) ListStockMovements(ctx context.Context, productID int64, limit, offset int) ([]domain.StockMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	movements, err := s.stockRepo.ListStockMovements(ctx, productID, limit, offset)
	if err != nil {
		logger.Error("Failed to list stock movements", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	return movements, nil
}
