package dto

import (
	"time"

	"github.com/bizsuite/erp_backend/internal/core/domain"
)

// CreateEmployeeRequest defines the data needed to create an employee.
type CreateEmployeeRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	EmpCode   string `json:"empCode" binding:"required,max=64"`
	JoinedAt  string `json:"joinedAt" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
type UpdateEmployeeRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	EmpCode   string     `json:"empCode"`
	JoinedAt  *time.Time `json:"joinedAt,omitempty"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Phone:     e.Phone,
		EmpCode:   e.EmpCode,
		JoinedAt:  e.JoinedAt,
	}
}

// ToListEmployeeResponse converts a slice of domain.Employee to response DTOs.
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = ToEmployeeResponse(&e)
	}
	return res
}
