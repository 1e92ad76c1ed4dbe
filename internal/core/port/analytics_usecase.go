package port

import (
	"context"
	"time"

	"phish-analytics/internal/core/domain"
)

// AnalyticsUseCase exposes the reporting operations. Every call reads a
// fresh snapshot of the event log and the directory; nothing is cached.
type AnalyticsUseCase interface {
	// DepartmentReport returns per-department rates over the optional
	// period. ErrInvalidRange is returned when From is after To. Store
	// failures fail the whole report.
	DepartmentReport(ctx context.Context, req ReportReq) (*domain.Report, error)

	// EmployeeTimeline returns the ordered actions of one employee.
	// ErrEmployeeNotFound is returned for ids unknown to the directory.
	EmployeeTimeline(ctx context.Context, req TimelineReq) ([]domain.TimelineEntry, error)
}

// ReportReq selects the snapshot a report is computed from. Nil bounds are
// open.
type ReportReq struct {
	From    *time.Time
	To      *time.Time
	AdminID string
}

type TimelineReq struct {
	EmployeeID string
	From       *time.Time
	To         *time.Time
}
