package domain

import "time"

// User is an authenticated principal. HashedPassword never leaves the
// service layer; DTOs expose everything else.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	FullName       string    `json:"fullName"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}
