package usecase

import (
	"context"
	"fmt"
	"time"

	"phish-analytics/internal/config/configs"
	"phish-analytics/internal/core/analytics"
	"phish-analytics/internal/core/domain"
	"phish-analytics/internal/core/port"
	"phish-analytics/internal/metrics"
)

// AnalyticsUseCase reads a snapshot of the event log and the directory and
// runs the analytics engine over it. It holds no state between calls.
type AnalyticsUseCase struct {
	events    port.EventRepository
	employees port.EmployeeRepository
	timeout   time.Duration
	now       func() time.Time
}

// NewAnalyticsUseCase creates the reporting usecase. cfg.Timeout bounds
// each call; zero disables the bound.
func NewAnalyticsUseCase(events port.EventRepository, employees port.EmployeeRepository, cfg configs.Analytics) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		events:    events,
		employees: employees,
		timeout:   cfg.Timeout,
		now:       time.Now,
	}
}

var _ port.AnalyticsUseCase = (*AnalyticsUseCase)(nil)

// DepartmentReport computes the department report for the requested period
// and administrator.
func (u *AnalyticsUseCase) DepartmentReport(ctx context.Context, req port.ReportReq) (*domain.Report, error) {
	if err := checkRange(req.From, req.To); err != nil {
		return nil, err
	}
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	start := u.now()

	employees, err := u.employees.ListEmployees(ctx, req.AdminID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	events, err := u.events.ListEvents(ctx, port.EventFilter{
		From:    req.From,
		To:      req.To,
		AdminID: req.AdminID,
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	report := analytics.BuildReport(events, employees)
	report.GeneratedAt = u.now().UTC()
	metrics.RecordReport(u.now().Sub(start), report.SkippedEvents)
	return &report, nil
}

// EmployeeTimeline returns one employee's actions in chronological order.
func (u *AnalyticsUseCase) EmployeeTimeline(ctx context.Context, req port.TimelineReq) ([]domain.TimelineEntry, error) {
	if err := checkRange(req.From, req.To); err != nil {
		return nil, err
	}
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	emp, err := u.employees.GetEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	if emp == nil {
		return nil, port.ErrEmployeeNotFound
	}

	events, err := u.events.ListEvents(ctx, port.EventFilter{
		From:       req.From,
		To:         req.To,
		EmployeeID: req.EmployeeID,
	})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return analytics.Timeline(events, req.EmployeeID), nil
}

func (u *AnalyticsUseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.timeout)
}

func checkRange(from, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return port.ErrInvalidRange
	}
	return nil
}
