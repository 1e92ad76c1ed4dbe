package port

import (
	"context"
	"encoding/json"
	"time"

	"phish-analytics/internal/core/domain"
)

// TrackingUseCase records interactions and manages the campaigns they
// belong to.
type TrackingUseCase interface {
	// LogEvent stores one interaction. A nil timestamp means "now".
	// Non-canonical actions or platforms yield ErrInvalidEvent.
	LogEvent(ctx context.Context, req LogEventReq) (*domain.Event, error)

	// ListEvents returns recent events, newest first. With IncludeEmployee
	// each event is enriched with the employee's name, email and
	// department.
	ListEvents(ctx context.Context, req ListEventsReq) ([]EnrichedEvent, error)

	// CreateCampaign assigns an id and stores the campaign.
	CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)

	ListCampaigns(ctx context.Context, adminID string) ([]domain.Campaign, error)

	// SendCampaign logs one sent event per recipient, all sharing the same
	// timestamp. ErrCampaignNotFound is returned for unknown campaigns and
	// ErrNoRecipients for an empty recipient list.
	SendCampaign(ctx context.Context, req SendCampaignReq) (int64, error)
}

type LogEventReq struct {
	CampaignID string
	EmployeeID string
	Platform   domain.Platform
	Action     domain.Action
	Timestamp  *time.Time
	Data       json.RawMessage
}

type ListEventsReq struct {
	IncludeEmployee bool
	Limit           int
}

// EnrichedEvent is an event with optional employee details attached.
type EnrichedEvent struct {
	domain.Event
	EmployeeName  string `json:"employeeName,omitempty"`
	EmployeeEmail string `json:"employeeEmail,omitempty"`
}

type SendCampaignReq struct {
	CampaignID string
	// Platform overrides the campaign's platform when set.
	Platform    domain.Platform
	EmployeeIDs []string
}
