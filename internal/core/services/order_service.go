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

// orderService coordinates sales order creation: item validation, referenced
// entity checks and the atomic header-plus-items write.
type orderService struct {
	orderRepo   portsrepo.OrderRepositoryFacade
	companyRepo portsrepo.CompanyRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
}

func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, companyRepo portsrepo.CompanyRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: orderRepo, companyRepo: companyRepo, productRepo: productRepo}
}

// CreateOrder validates and persists a sales order with its items. The company
// and every referenced product must exist; quantities must be positive. The
// header and items are committed as one unit, and the total is computed from
// the items, never stored.
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.SalesOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order must have at least one item", apperrors.ErrValidation)
	}
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d: quantity must be positive", apperrors.ErrValidation, i)
		}
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: item %d: unit price must not be negative", apperrors.ErrValidation, i)
		}
	}

	orderDate, err := time.Parse("2006-01-02", req.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("%w: orderDate must be a YYYY-MM-DD date", apperrors.ErrValidation)
	}
	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: dueDate must be a YYYY-MM-DD date", apperrors.ErrValidation)
		}
		dueDate = &parsed
	}

	if _, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: company %d not found", apperrors.ErrNotFound, req.CompanyID)
		}
		logger.Error("Failed to fetch company for order", slog.String("error", err.Error()))
		return nil, err
	}

	items := req.ToDomainItems()
	productIDs := uniqueProductIDs(items)
	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		logger.Error("Failed to fetch products for order", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	for _, id := range productIDs {
		if _, ok := products[id]; !ok {
			return nil, fmt.Errorf("%w: product %d not found", apperrors.ErrNotFound, id)
		}
	}

	order := domain.SalesOrder{
		CompanyID: req.CompanyID,
		OrderDate: orderDate,
		DueDate:   dueDate,
		Notes:     req.Notes,
		Items:     items,
	}

	saved, err := s.orderRepo.SaveOrderWithItems(ctx, order)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to save order", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Order created",
		slog.Int64("order_id", saved.ID),
		slog.Int("item_count", len(saved.Items)),
		slog.String("total_amount", saved.TotalAmount().String()),
	)
	return saved, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID int64) (*domain.SalesOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find order by ID", slog.String("error", err.Error()), slog.Int64("order_id", orderID))
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, limit, offset int) ([]domain.SalesOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	orders, err := s.orderRepo.ListOrders(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list orders", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListOrdersByCompany retrieves the orders placed by one company. The company
// must exist so an unknown ID surfaces as 404 rather than an empty list.
func (s *orderService) ListOrdersByCompany(ctx context.Context, companyID int64, limit, offset int) ([]domain.SalesOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to fetch company for order listing", slog.String("error", err.Error()))
		}
		return nil, err
	}

	orders, err := s.orderRepo.ListOrdersByCompany(ctx, companyID, limit, offset)
	if err != nil {
		logger.Error("Failed to list orders by company", slog.String("error", err.Error()), slog.Int64("company_id", companyID))
		return nil, fmt.Errorf("failed to list orders by company: %w", err)
	}
	return orders, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.orderRepo.DeleteOrder(ctx, orderID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete order", slog.String("error", err.Error()), slog.Int64("order_id", orderID))
		}
		return err
	}
	logger.Info("Order deleted", slog.Int64("order_id", orderID))
	return nil
}

func uniqueProductIDs(items []domain.SalesOrderItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
