package domain

import "time"

// Company represents a customer or supplier organisation.
type Company struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	GSTIN        string    `json:"gstin"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone"`
	CreatedAt    time.Time `json:"createdAt"`
}
