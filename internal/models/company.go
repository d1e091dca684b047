package models

import "time"

// Company is the database row for a company.
type Company struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	GSTIN        string    `db:"gstin"`
	ContactEmail string    `db:"contact_email"`
	ContactPhone string    `db:"contact_phone"`
	CreatedAt    time.Time `db:"created_at"`
}
