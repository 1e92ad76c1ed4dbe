package port

import (
	"context"

	"phish-analytics/internal/core/domain"
)

// EmployeeRepository is the directory store.
type EmployeeRepository interface {
	// ListEmployees returns the employees owned by adminID, newest first.
	// An empty adminID lists every employee.
	ListEmployees(ctx context.Context, adminID string) ([]domain.Employee, error)
	// GetEmployee returns nil when no employee has the id.
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)
	// ImportEmployees inserts employees, skipping emails the admin already
	// has, and returns how many rows were created.
	ImportEmployees(ctx context.Context, employees []domain.Employee) (int64, error)
	// DeleteEmployee returns ErrEmployeeNotFound for unknown ids.
	DeleteEmployee(ctx context.Context, id string) error
}
