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
	"github.com/bizsuite/erp_backend/internal/platform/config"
	"github.com/bizsuite/erp_backend/internal/utils"
)

// authService handles registration and credential verification. Token signing
// parameters come from configuration.
type authService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userRepo: userRepo}
}

// Register creates a new user with a bcrypt-hashed password. A duplicate
// email surfaces as ErrDuplicate.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		Email:          req.Email,
		HashedPassword: hashed,
		FullName:       req.FullName,
		IsActive:       true,
	}

	saved, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to create user", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("User registered", slog.Int64("user_id", saved.ID))
	return saved, nil
}

// Login verifies credentials and returns the user with a signed access token.
// Wrong email and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: incorrect email or password", apperrors.ErrValidation)
		}
		logger.Error("Failed to look up user by email", slog.String("error", err.Error()))
		return nil, "", err
	}

	if !utils.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, "", fmt.Errorf("%w: incorrect email or password", apperrors.ErrValidation)
	}

	if !user.IsActive {
		return nil, "", fmt.Errorf("%w: user is inactive", apperrors.ErrValidation)
	}

	token, err := utils.GenerateJWT(user.ID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()), slog.Int64("user_id", user.ID))
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	logger.Info("User logged in", slog.Int64("user_id", user.ID))
	return user, token, nil
}
