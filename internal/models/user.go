package models

import "time"

// User is the database row for a user.
type User struct {
	ID             int64     `db:"id"`
	Email          string    `db:"email"`
	HashedPassword string    `db:"hashed_password"`
	FullName       string    `db:"full_name"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
}
