package dto

import (
	"time"

	"github.com/bizsuite/erp_backend/internal/core/domain"
)

// UserResponse defines the data returned for a user. The password hash never
// appears here.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers distinguish "leave unchanged" from an explicit zero value.
type UpdateUserRequest struct {
	FullName *string `json:"fullName"`
	IsActive *bool   `json:"isActive"`
}

// ListParams defines the offset pagination query parameters shared by list endpoints.
type ListParams struct {
	Skip  int `form:"skip,default=0"`
	Limit int `form:"limit,default=100"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to response DTOs.
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(&u)
	}
	return res
}
