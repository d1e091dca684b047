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

type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

func (r *PgxCompanyRepository) CreateCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	query := `
		INSERT INTO companies (name, gstin, contact_email, contact_phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`
	m := models.Company{
		Name:         company.Name,
		GSTIN:        company.GSTIN,
		ContactEmail: company.ContactEmail,
		ContactPhone: company.ContactPhone,
	}
	err := r.Pool.QueryRow(ctx, query, m.Name, m.GSTIN, m.ContactEmail, m.ContactPhone).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("company with this GSTIN already exists")
		}
		return nil, apperrors.NewAppError(500, "failed to create company", err)
	}
	saved := mapping.ToDomainCompany(m)
	return &saved, nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	query := `
		SELECT id, name, gstin, contact_email, contact_phone, created_at
		FROM companies
		WHERE id = $1;
	`
	return r.scanOneCompany(r.Pool.QueryRow(ctx, query, companyID))
}

func (r *PgxCompanyRepository) FindCompanyByGSTIN(ctx context.Context, gstin string) (*domain.Company, error) {
	query := `
		SELECT id, name, gstin, contact_email, contact_phone, created_at
		FROM companies
		WHERE gstin = $1;
	`
	return r.scanOneCompany(r.Pool.QueryRow(ctx, query, gstin))
}

func (r *PgxCompanyRepository) ListCompanies(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	query := `
		SELECT id, name, gstin, contact_email, contact_phone, created_at
		FROM companies
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list companies", err)
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		var m models.Company
		if err := rows.Scan(&m.ID, &m.Name, &m.GSTIN, &m.ContactEmail, &m.ContactPhone, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan company row", err)
		}
		companies = append(companies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating company rows", err)
	}
	return mapping.ToDomainCompanySlice(companies), nil
}

func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	query := `
		UPDATE companies
		SET name = $2, gstin = $3, contact_email = $4, contact_phone = $5
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, company.ID, company.Name, company.GSTIN, company.ContactEmail, company.ContactPhone)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("company with this GSTIN already exists")
		}
		return apperrors.NewAppError(500, "failed to update company", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCompanyRepository) DeleteCompany(ctx context.Context, companyID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM companies WHERE id = $1;`, companyID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewConflictError("company has sales orders and cannot be deleted")
		}
		return apperrors.NewAppError(500, "failed to delete company", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCompanyRepository) scanOneCompany(row pgx.Row) (*domain.Company, error) {
	var m models.Company
	err := row.Scan(&m.ID, &m.Name, &m.GSTIN, &m.ContactEmail, &m.ContactPhone, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find company", err)
	}
	company := mapping.ToDomainCompany(m)
	return &company, nil
}
