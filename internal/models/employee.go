package models

import "time"

// Employee is the database row for an employee.
type Employee struct {
	ID        int64      `db:"id"`
	FirstName string     `db:"first_name"`
	LastName  string     `db:"last_name"`
	Email     string     `db:"email"`
	Phone     string     `db:"phone"`
	EmpCode   string     `db:"emp_code"`
	JoinedAt  *time.Time `db:"joined_at"`
}
