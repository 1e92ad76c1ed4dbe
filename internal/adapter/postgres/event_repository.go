package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"phish-analytics/internal/core/domain"
	"phish-analytics/internal/core/port"
)

// EventRepository implements port.EventRepository on the phishing_logs
// table.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository returns a new repository instance.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// ListEvents returns events matching filter. The employee's directory
// department is joined in as the denormalized tag. Events of employees that
// are not in the directory are still returned.
func (r *EventRepository) ListEvents(ctx context.Context, filter port.EventFilter) ([]domain.Event, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.From != nil {
		where = append(where, `l."timestamp" >= `+arg(*filter.From))
	}
	if filter.To != nil {
		where = append(where, `l."timestamp" <= `+arg(*filter.To))
	}
	if filter.CampaignID != "" {
		where = append(where, "l.campaign_id = "+arg(filter.CampaignID))
	}
	if filter.EmployeeID != "" {
		where = append(where, "l.employee_id = "+arg(filter.EmployeeID))
	}
	if filter.AdminID != "" {
		p := arg(filter.AdminID)
		where = append(where, fmt.Sprintf("(e.admin_id = %s OR c.admin_id = %s)", p, p))
	}

	query := `
        SELECT
            l.id,
            l.campaign_id,
            l.employee_id,
            l.platform,
            l.action,
            l."timestamp",
            l.data,
            COALESCE(e.department, ''),
            l.created_at
        FROM phishing_logs l
        LEFT JOIN employees e ON e.id::text = l.employee_id
        LEFT JOIN campaigns c ON c.id::text = l.campaign_id`
	if len(where) > 0 {
		query += "\n        WHERE " + strings.Join(where, " AND ")
	}
	if filter.Limit > 0 {
		query += "\n        ORDER BY l.id DESC LIMIT " + arg(filter.Limit)
	} else {
		query += "\n        ORDER BY l.id"
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		var (
			ev   domain.Event
			ts   *time.Time
			data []byte
		)
		err := row.Scan(
			&ev.ID,
			&ev.CampaignID,
			&ev.EmployeeID,
			&ev.Platform,
			&ev.Action,
			&ts,
			&data,
			&ev.EmployeeDepartment,
			&ev.CreatedAt,
		)
		if ts != nil {
			ev.Timestamp = *ts
		}
		if len(data) > 0 {
			ev.Data = data
		}
		return ev, err
	})
}

// AppendEvent inserts a single event and fills ev.ID and ev.CreatedAt.
func (r *EventRepository) AppendEvent(ctx context.Context, ev *domain.Event) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO phishing_logs (campaign_id, employee_id, platform, action, "timestamp", data) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at`,
		ev.CampaignID, ev.EmployeeID, ev.Platform, ev.Action, nullTime(ev.Timestamp), nullJSON(ev.Data),
	).Scan(&ev.ID, &ev.CreatedAt)
}

// AppendEvents bulk-inserts events with COPY.
func (r *EventRepository) AppendEvents(ctx context.Context, events []domain.Event) (int64, error) {
	if len(events) == 0 {
		return 0, nil
	}
	return r.pool.CopyFrom(ctx,
		pgx.Identifier{"phishing_logs"},
		[]string{"campaign_id", "employee_id", "platform", "action", "timestamp", "data"},
		pgx.CopyFromSlice(len(events), func(i int) ([]any, error) {
			ev := events[i]
			return []any{
				ev.CampaignID,
				ev.EmployeeID,
				string(ev.Platform),
				string(ev.Action),
				nullTime(ev.Timestamp),
				nullJSON(ev.Data),
			}, nil
		}),
	)
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func nullJSON(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return b
}
