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

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find user by ID", slog.String("error", err.Error()), slog.Int64("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	users, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies a partial update; nil fields are left unchanged.
func (s *userService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to update user", slog.String("error", err.Error()), slog.Int64("user_id", userID))
		}
		return nil, err
	}

	logger.Info("User updated", slog.Int64("user_id", userID))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete user", slog.String("error", err.Error()), slog.Int64("user_id", userID))
		}
		return err
	}
	logger.Info("User deleted", slog.Int64("user_id", userID))
	return nil
}
