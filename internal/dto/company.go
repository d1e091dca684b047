package dto

import (
	"time"

	"github.com/bizsuite/erp_backend/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to create a company.
type CreateCompanyRequest struct {
	Name         string `json:"name" binding:"required"`
	GSTIN        string `json:"gstin"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
}

// UpdateCompanyRequest defines the data allowed for updating a company.
type UpdateCompanyRequest struct {
	Name         *string `json:"name"`
	GSTIN        *string `json:"gstin"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone *string `json:"contactPhone"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	GSTIN        string    `json:"gstin"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		GSTIN:        c.GSTIN,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		CreatedAt:    c.CreatedAt,
	}
}

// ToListCompanyResponse converts a slice of domain.Company to response DTOs.
func ToListCompanyResponse(companies []domain.Company) []CompanyResponse {
	res := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		res[i] = ToCompanyResponse(&c)
	}
	return res
}
