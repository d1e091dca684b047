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

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func (r *PgxEmployeeRepository) CreateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	query := `
		INSERT INTO employees (first_name, last_name, email, phone, emp_code, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	m := models.Employee{
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		Email:     employee.Email,
		Phone:     employee.Phone,
		EmpCode:   employee.EmpCode,
		JoinedAt:  employee.JoinedAt,
	}
	err := r.Pool.QueryRow(ctx, query, m.FirstName, m.LastName, m.Email, m.Phone, m.EmpCode, m.JoinedAt).
		Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("employee with this code or email already exists")
		}
		return nil, apperrors.NewAppError(500, "failed to create employee", err)
	}
	saved := mapping.ToDomainEmployee(m)
	return &saved, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, emp_code, joined_at
		FROM employees
		WHERE id = $1;
	`
	return r.scanOneEmployee(r.Pool.QueryRow(ctx, query, employeeID))
}

func (r *PgxEmployeeRepository) FindEmployeeByEmpCode(ctx context.Context, empCode string) (*domain.Employee, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, emp_code, joined_at
		FROM employees
		WHERE emp_code = $1;
	`
	return r.scanOneEmployee(r.Pool.QueryRow(ctx, query, empCode))
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, emp_code, joined_at
		FROM employees
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list employees", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var m models.Employee
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.EmpCode, &m.JoinedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan employee row", err)
		}
		employees = append(employees, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating employee rows", err)
	}
	return mapping.ToDomainEmployeeSlice(employees), nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4, phone = $5, emp_code = $6, joined_at = $7
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		employee.ID, employee.FirstName, employee.LastName, employee.Email,
		employee.Phone, employee.EmpCode, employee.JoinedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("employee with this code or email already exists")
		}
		return apperrors.NewAppError(500, "failed to update employee", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE id = $1;`, employeeID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete employee", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) scanOneEmployee(row pgx.Row) (*domain.Employee, error) {
	var m models.Employee
	err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.EmpCode, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find employee", err)
	}
	employee := mapping.ToDomainEmployee(m)
	return &employee, nil
}
