package domain

import "time"

// Employee is an HR record identified by a unique employee code.
type Employee struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	EmpCode   string     `json:"empCode"`
	JoinedAt  *time.Time `json:"joinedAt,omitempty"`
}
