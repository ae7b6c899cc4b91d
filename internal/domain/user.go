package domain

import "time"

// User represents an account that can act on projects and tasks. A user may
// be linked to an employee record; audit rows note the link either way.
type User struct {
	ID         string
	Name       string
	Email      string
	IsActive   bool
	EmployeeID *string
	CreatedAt  time.Time
}

// IsEmployeeLinked returns true when the account is tied to an employee.
func (u *User) IsEmployeeLinked() bool {
	return u.EmployeeID != nil
}
