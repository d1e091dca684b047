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

type employeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.employeeRepo.FindEmployeeByEmpCode(ctx, req.EmpCode)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for existing employee code", slog.String("error", err.Error()))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: employee with this code already exists", apperrors.ErrDuplicate)
	}

	var joinedAt *time.Time
	if req.JoinedAt != "" {
		parsed, err := time.Parse("2006-01-02", req.JoinedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: joinedAt must be a YYYY-MM-DD date", apperrors.ErrValidation)
		}
		joinedAt = &parsed
	}

	employee := domain.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		EmpCode:   req.EmpCode,
		JoinedAt:  joinedAt,
	}

	saved, err := s.employeeRepo.CreateEmployee(ctx, employee)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to create employee", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Employee created", slog.Int64("employee_id", saved.ID))
	return saved, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find employee by ID", slog.String("error", err.Error()), slog.Int64("employee_id", employeeID))
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	employees, err := s.employeeRepo.ListEmployees(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list employees", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// UpdateEmployee applies a partial update; nil fields are left unchanged.
func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to update employee", slog.String("error", err.Error()), slog.Int64("employee_id", employeeID))
		}
		return nil, err
	}

	logger.Info("Employee updated", slog.Int64("employee_id", employeeID))
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete employee", slog.String("error", err.Error()), slog.Int64("employee_id", employeeID))
		}
		return err
	}
	logger.Info("Employee deleted", slog.Int64("employee_id", employeeID))
	return nil
}
