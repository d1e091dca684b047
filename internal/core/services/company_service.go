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

type companyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
}

func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

// CreateCompany persists a new company. GSTIN uniqueness is enforced by the
// database and checked up front so the caller gets a clean duplicate error.
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.GSTIN != "" {
		existing, err := s.companyRepo.FindCompanyByGSTIN(ctx, req.GSTIN)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to check for existing GSTIN", slog.String("error", err.Error()))
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: company with this GSTIN already exists", apperrors.ErrDuplicate)
		}
	}

	company := domain.Company{
		Name:         req.Name,
		GSTIN:        req.GSTIN,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	}

	saved, err := s.companyRepo.CreateCompany(ctx, company)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to create company", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Company created", slog.Int64("company_id", saved.ID))
	return saved, nil
}

func (s *companyService) GetCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find company by ID", slog.String("error", err.Error()), slog.Int64("company_id", companyID))
		}
		return nil, err
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	companies, err := s.companyRepo.ListCompanies(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list companies", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// UpdateCompany applies a partial update; nil fields are left unchanged.
func (s *companyService) UpdateCompany(ctx context.Context, companyID int64, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.GSTIN != nil {
		company.GSTIN = *req.GSTIN
	}
	if req.ContactEmail != nil {
		company.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		company.ContactPhone = *req.ContactPhone
	}

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to update company", slog.String("error", err.Error()), slog.Int64("company_id", companyID))
		}
		return nil, err
	}

	logger.Info("Company updated", slog.Int64("company_id", companyID))
	return company, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, companyID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.companyRepo.DeleteCompany(ctx, companyID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to delete company", slog.String("error", err.Error()), slog.Int64("company_id", companyID))
		}
		return err
	}
	logger.Info("Company deleted", slog.Int64("company_id", companyID))
	return nil
}
