package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"phish-analytics/internal/config/configs"
	"phish-analytics/internal/core/domain"
	"phish-analytics/internal/core/port"
	"phish-analytics/internal/metrics"
)

// TrackingUseCase records interactions and manages campaigns.
type TrackingUseCase struct {
	events    port.EventRepository
	employees port.EmployeeRepository
	campaigns port.CampaignRepository
	pageSize  int
	now       func() time.Time
}

// NewTrackingUseCase creates the tracking usecase. cfg.EventsPageSize caps
// ListEvents.
func NewTrackingUseCase(
	events port.EventRepository,
	employees port.EmployeeRepository,
	campaigns port.CampaignRepository,
	cfg configs.Analytics,
) *TrackingUseCase {
	pageSize := cfg.EventsPageSize
	if pageSize <= 0 {
		pageSize = 500
	}
	return &TrackingUseCase{
		events:    events,
		employees: employees,
		campaigns: campaigns,
		pageSize:  pageSize,
		now:       time.Now,
	}
}

var _ port.TrackingUseCase = (*TrackingUseCase)(nil)

// LogEvent validates and stores one interaction.
func (u *TrackingUseCase) LogEvent(ctx context.Context, req port.LogEventReq) (*domain.Event, error) {
	ev := domain.Event{
		CampaignID: strings.TrimSpace(req.CampaignID),
		EmployeeID: strings.TrimSpace(req.EmployeeID),
		Platform:   req.Platform,
		Action:     req.Action,
		Data:       req.Data,
	}
	switch {
	case ev.CampaignID == "":
		return nil, fmt.Errorf("%w: campaign id is required", port.ErrInvalidEvent)
	case ev.EmployeeID == "":
		return nil, fmt.Errorf("%w: employee id is required", port.ErrInvalidEvent)
	case !ev.Action.Valid():
		return nil, fmt.Errorf("%w: unknown action %q", port.ErrInvalidEvent, ev.Action)
	case !ev.Platform.Valid():
		return nil, fmt.Errorf("%w: unknown platform %q", port.ErrInvalidEvent, ev.Platform)
	}

	if req.Timestamp != nil && !req.Timestamp.IsZero() {
		ev.Timestamp = req.Timestamp.UTC()
	} else {
		ev.Timestamp = u.now().UTC()
	}

	if err := u.events.AppendEvent(ctx, &ev); err != nil {
		return nil, fmt.Errorf("append event: %w", err)
	}
	metrics.RecordEvents(string(ev.Action), 1)
	return &ev, nil
}

// ListEvents returns the most recent events, optionally with employee
// details attached.
func (u *TrackingUseCase) ListEvents(ctx context.Context, req port.ListEventsReq) ([]port.EnrichedEvent, error) {
	limit := req.Limit
	if limit <= 0 || limit > u.pageSize {
		limit = u.pageSize
	}
	events, err := u.events.ListEvents(ctx, port.EventFilter{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	var byID map[string]domain.Employee
	if req.IncludeEmployee {
		employees, err := u.employees.ListEmployees(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("list employees: %w", err)
		}
		byID = make(map[string]domain.Employee, len(employees))
		for _, e := range employees {
			byID[e.ID] = e
		}
	}

	out := make([]port.EnrichedEvent, 0, len(events))
	for _, ev := range events {
		item := port.EnrichedEvent{Event: ev}
		if req.IncludeEmployee {
			if e, ok := byID[ev.EmployeeID]; ok {
				item.EmployeeName = e.FullName()
				item.EmployeeEmail = e.Email
			}
			if strings.TrimSpace(item.EmployeeDepartment) == "" {
				item.EmployeeDepartment = domain.UnknownDepartment
			}
		}
		out = append(out, item)
	}
	return out, nil
}

// CreateCampaign validates c, assigns it an id and stores it.
func (u *TrackingUseCase) CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, fmt.Errorf("%w: name is required", port.ErrInvalidCampaign)
	}
	if !c.Platform.Valid() {
		return nil, fmt.Errorf("%w: unknown platform %q", port.ErrInvalidCampaign, c.Platform)
	}
	c.ID = uuid.NewString()
	if err := u.campaigns.CreateCampaign(ctx, &c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return &c, nil
}

func (u *TrackingUseCase) ListCampaigns(ctx context.Context, adminID string) ([]domain.Campaign, error) {
	return u.campaigns.ListCampaigns(ctx, adminID)
}

// SendCampaign records the send of a campaign to the given employees. All
// sent events share one timestamp. Repeated ids are logged once.
func (u *TrackingUseCase) SendCampaign(ctx context.Context, req port.SendCampaignReq) (int64, error) {
	camp, err := u.campaigns.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return 0, fmt.Errorf("get campaign: %w", err)
	}
	if camp == nil {
		return 0, port.ErrCampaignNotFound
	}

	platform := camp.Platform
	if req.Platform != "" {
		if !req.Platform.Valid() {
			return 0, fmt.Errorf("%w: unknown platform %q", port.ErrInvalidCampaign, req.Platform)
		}
		platform = req.Platform
	}

	seen := make(map[string]struct{}, len(req.EmployeeIDs))
	sentAt := u.now().UTC()
	events := make([]domain.Event, 0, len(req.EmployeeIDs))
	for _, id := range req.EmployeeIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		events = append(events, domain.Event{
			CampaignID: camp.ID,
			EmployeeID: id,
			Platform:   platform,
			Action:     domain.ActionSent,
			Timestamp:  sentAt,
		})
	}
	if len(events) == 0 {
		return 0, port.ErrNoRecipients
	}

	n, err := u.events.AppendEvents(ctx, events)
	if err != nil {
		return 0, fmt.Errorf("append sent events: %w", err)
	}
	metrics.RecordEvents(string(domain.ActionSent), int(n))
	return n, nil
}
