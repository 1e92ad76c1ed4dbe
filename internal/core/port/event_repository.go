package port

import (
	"context"
	"time"

	"phish-analytics/internal/core/domain"
)

// EventRepository is the event log store. Reads return events with the
// owning employee's department joined in as EmployeeDepartment when the
// directory has one. Writes are independent appends; nothing is ever
// updated or deleted.
type EventRepository interface {
	// ListEvents returns the events matching filter in insertion order.
	ListEvents(ctx context.Context, filter EventFilter) ([]domain.Event, error)
	// AppendEvent stores a single event and fills its ID and CreatedAt.
	AppendEvent(ctx context.Context, ev *domain.Event) error
	// AppendEvents stores a batch of events in one round trip and returns
	// the number of rows written.
	AppendEvents(ctx context.Context, events []domain.Event) (int64, error)
}

// EventFilter narrows ListEvents. Zero values mean "no constraint". From
// and To are inclusive. Limit caps the number of events, newest first,
// when positive.
type EventFilter struct {
	From       *time.Time
	To         *time.Time
	CampaignID string
	EmployeeID string
	AdminID    string
	Limit      int
}
