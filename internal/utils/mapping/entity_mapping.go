package mapping

import (
	"github.com/bizsuite/erp_backend/internal/core/domain"
	"github.com/bizsuite/erp_backend/internal/models"
)

func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		ID:           m.ID,
		Name:         m.Name,
		GSTIN:        m.GSTIN,
		ContactEmail: m.ContactEmail,
		ContactPhone: m.ContactPhone,
		CreatedAt:    m.CreatedAt,
	}
}

func ToDomainCompanySlice(ms []models.Company) []domain.Company {
	ds := make([]domain.Company, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompany(m)
	}
	return ds
}

func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ID:          m.ID,
		SKU:         m.SKU,
		Name:        m.Name,
		Description: m.Description,
		UnitPrice:   m.UnitPrice,
		CostPrice:   m.CostPrice,
		IsActive:    m.IsActive,
		CategoryID:  m.CategoryID,
	}
}

func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}

func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		ID:       m.ID,
		Name:     m.Name,
		ParentID: m.ParentID,
	}
}

func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}

func ToDomainUser(m models.User) domain.User {
	return domain.User{
		ID:             m.ID,
		Email:          m.Email,
		HashedPassword: m.HashedPassword,
		FullName:       m.FullName,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
}

func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}

func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
		EmpCode:   m.EmpCode,
		JoinedAt:  m.JoinedAt,
	}
}

func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}

func ToDomainWarehouse(m models.Warehouse) domain.Warehouse {
	return domain.Warehouse{
		ID:       m.ID,
		Name:     m.Name,
		Location: m.Location,
	}
}

func ToDomainWarehouseSlice(ms []models.Warehouse) []domain.Warehouse {
	ds := make([]domain.Warehouse, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWarehouse(m)
	}
	return ds
}

func ToDomainStockMovement(m models.StockMovement) domain.StockMovement {
	return domain.StockMovement{
		ID:          m.ID,
		ProductID:   m.ProductID,
		WarehouseID: m.WarehouseID,
		Change:      m.Change,
		Reason:      m.Reason,
		OccurredAt:  m.OccurredAt,
	}
}

func ToDomainStockMovementSlice(ms []models.StockMovement) []domain.StockMovement {
	ds := make([]domain.StockMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockMovement(m)
	}
	return ds
}
