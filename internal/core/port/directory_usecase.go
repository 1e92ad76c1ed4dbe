package port

import (
	"context"

	"phish-analytics/internal/core/domain"
)

// DirectoryUseCase manages the employee roster of an administrator.
type DirectoryUseCase interface {
	ListEmployees(ctx context.Context, adminID string) ([]domain.Employee, error)
	// ImportEmployees normalises and stores a roster, skipping rows without
	// an email and emails already present. It returns the created count.
	ImportEmployees(ctx context.Context, adminID string, employees []domain.Employee) (int64, error)
	DeleteEmployee(ctx context.Context, id string) error
}
