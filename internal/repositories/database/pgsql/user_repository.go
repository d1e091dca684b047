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

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, hashed_password, full_name, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`
	m := models.User{
		Email:          user.Email,
		HashedPassword: user.HashedPassword,
		FullName:       user.FullName,
		IsActive:       user.IsActive,
	}
	err := r.Pool.QueryRow(ctx, query, m.Email, m.HashedPassword, m.FullName, m.IsActive).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("user with this email already exists")
		}
		return nil, apperrors.NewAppError(500, "failed to create user", err)
	}
	saved := mapping.ToDomainUser(m)
	return &saved, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		SELECT id, email, hashed_password, full_name, is_active, created_at
		FROM users
		WHERE id = $1;
	`
	return r.scanOneUser(r.Pool.QueryRow(ctx, query, userID))
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, hashed_password, full_name, is_active, created_at
		FROM users
		WHERE email = $1;
	`
	return r.scanOneUser(r.Pool.QueryRow(ctx, query, email))
}

func (r *PgxUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	query := `
		SELECT id, email, hashed_password, full_name, is_active, created_at
		FROM users
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list users", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var m models.User
		if err := rows.Scan(&m.ID, &m.Email, &m.HashedPassword, &m.FullName, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user row", err)
		}
		users = append(users, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating user rows", err)
	}
	return mapping.ToDomainUserSlice(users), nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET email = $2, full_name = $3, is_active = $4, hashed_password = $5
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, user.ID, user.Email, user.FullName, user.IsActive, user.HashedPassword)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("user with this email already exists")
		}
		return apperrors.NewAppError(500, "failed to update user", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1;`, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete user", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) scanOneUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(&m.ID, &m.Email, &m.HashedPassword, &m.FullName, &m.IsActive, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}
