package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"phish-analytics/internal/core/domain"
	"phish-analytics/internal/core/port"
)

// DirectoryUseCase manages employee rosters.
type DirectoryUseCase struct {
	repo port.EmployeeRepository
}

func NewDirectoryUseCase(repo port.EmployeeRepository) *DirectoryUseCase {
	return &DirectoryUseCase{repo: repo}
}

var _ port.DirectoryUseCase = (*DirectoryUseCase)(nil)

func (u *DirectoryUseCase) ListEmployees(ctx context.Context, adminID string) ([]domain.Employee, error) {
	return u.repo.ListEmployees(ctx, adminID)
}

// ImportEmployees trims every field, lower-cases emails and drops rows
// without an email or repeating an earlier row's email.
func (u *DirectoryUseCase) ImportEmployees(ctx context.Context, adminID string, employees []domain.Employee) (int64, error) {
	seen := make(map[string]struct{}, len(employees))
	rows := make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		email := strings.ToLower(strings.TrimSpace(e.Email))
		if email == "" {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		rows = append(rows, domain.Employee{
			ID:         uuid.NewString(),
			AdminID:    adminID,
			FirstName:  strings.TrimSpace(e.FirstName),
			LastName:   strings.TrimSpace(e.LastName),
			Email:      email,
			Department: strings.TrimSpace(e.Department),
		})
	}
	if len(rows) == 0 {
		return 0, nil
	}
	n, err := u.repo.ImportEmployees(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("import employees: %w", err)
	}
	return n, nil
}

func (u *DirectoryUseCase) DeleteEmployee(ctx context.Context, id string) error {
	return u.repo.DeleteEmployee(ctx, id)
}
