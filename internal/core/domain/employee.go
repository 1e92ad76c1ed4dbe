package domain

import (
	"strings"
	"time"
)

// UnknownDepartment is used when neither the directory nor an event names a
// department.
const UnknownDepartment = "Unknown"

// Employee is a directory entry owned by an administrator.
type Employee struct {
	ID         string    `json:"id"`
	AdminID    string    `json:"adminId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Department string    `json:"department,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FullName joins first and last name, trimming missing parts.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// DepartmentOrUnknown returns the department, or UnknownDepartment when blank.
func (e Employee) DepartmentOrUnknown() string {
	if d := strings.TrimSpace(e.Department); d != "" {
		return d
	}
	return UnknownDepartment
}
