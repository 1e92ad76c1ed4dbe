package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"phish-analytics/internal/core/domain"
	"phish-analytics/internal/core/port"
)

type logEventRequest struct {
	CampaignID string          `json:"campaignId" validate:"required"`
	EmployeeID string          `json:"employeeId" validate:"required"`
	Platform   string          `json:"platform" validate:"required,platform"`
	Action     string          `json:"action" validate:"required,action"`
	Timestamp  *time.Time      `json:"timestamp"`
	Data       json.RawMessage `json:"data"`
}

// handleLogEvent records one interaction and answers 201 with the stored
// event.
func (h *Handler) handleLogEvent(w http.ResponseWriter, r *http.Request) {
	var req logEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	ev, err := h.tracking.LogEvent(r.Context(), port.LogEventReq{
		CampaignID: req.CampaignID,
		EmployeeID: req.EmployeeID,
		Platform:   domain.Platform(req.Platform),
		Action:     domain.Action(req.Action),
		Timestamp:  req.Timestamp,
		Data:       req.Data,
	})
	if err != nil {
		h.writeError(w, r, "log event", err)
		return
	}
	writeJSON(w, http.StatusCreated, ev)
}

// handleListEvents returns recent events, newest first. With
// `include_employee=1` each event carries the employee's name, email and
// department. `limit` caps the page.
func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := port.ListEventsReq{}

	if v := q.Get("include_employee"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			badRequest(w, "invalid include_employee")
			return
		}
		req.IncludeEmployee = include
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			badRequest(w, "invalid limit")
			return
		}
		req.Limit = n
	}

	events, err := h.tracking.ListEvents(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "list events", err)
		return
	}
	if events == nil {
		events = []port.EnrichedEvent{}
	}
	writeJSON(w, http.StatusOK, events)
}
