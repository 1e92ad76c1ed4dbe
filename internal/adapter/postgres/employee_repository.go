package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"phish-analytics/internal/core/domain"
	"phish-analytics/internal/core/port"
)

// EmployeeRepository implements port.EmployeeRepository.
type EmployeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository returns a new repository instance.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

const employeeColumns = `id::text, admin_id, first_name, last_name, email, COALESCE(department, ''), created_at`

func scanEmployee(row pgx.Row) (domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(&e.ID, &e.AdminID, &e.FirstName, &e.LastName, &e.Email, &e.Department, &e.CreatedAt)
	return e, err
}

// ListEmployees returns the employees of adminID, newest first.
func (r *EmployeeRepository) ListEmployees(ctx context.Context, adminID string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	var args []any
	if adminID != "" {
		query += ` WHERE admin_id = $1`
		args = append(args, adminID)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Employee, error) {
		return scanEmployee(row)
	})
}

// GetEmployee returns an employee by id or nil.
func (r *EmployeeRepository) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	e, err := scanEmployee(r.pool.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id::text = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ImportEmployees inserts the roster in one batch. Rows whose (admin_id,
// email) already exist, or whose id is taken, are skipped.
func (r *EmployeeRepository) ImportEmployees(ctx context.Context, employees []domain.Employee) (int64, error) {
	if len(employees) == 0 {
		return 0, nil
	}
	batch := &pgx.Batch{}
	for _, e := range employees {
		batch.Queue(
			`INSERT INTO employees (id, admin_id, first_name, last_name, email, department) VALUES ($1,$2,$3,$4,$5,NULLIF($6, '')) ON CONFLICT DO NOTHING`,
			e.ID, e.AdminID, e.FirstName, e.LastName, e.Email, e.Department,
		)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	var created int64
	for range employees {
		tag, err := br.Exec()
		if err != nil {
			return created, err
		}
		created += tag.RowsAffected()
	}
	return created, nil
}

// DeleteEmployee removes an employee. Their events stay in the log.
func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id::text = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrEmployeeNotFound
	}
	return nil
}
