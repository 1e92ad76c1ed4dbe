package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"phish-analytics/internal/core/port"
)

// handleDepartmentReport returns the department report. It accepts optional
// `from` and `to` (RFC3339 or YYYY-MM-DD) and `admin_id` query parameters.
// Unparseable dates and from > to produce HTTP 400; store failures produce
// HTTP 500.
func (h *Handler) handleDepartmentReport(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRange(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	report, err := h.analytics.DepartmentReport(r.Context(), port.ReportReq{
		From:    from,
		To:      to,
		AdminID: r.URL.Query().Get("admin_id"),
	})
	if err != nil {
		h.writeError(w, r, "department report", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handleEmployeeTimeline returns the ordered actions of one employee for
// drill-down. Unknown employees produce HTTP 404.
func (h *Handler) handleEmployeeTimeline(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRange(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	entries, err := h.analytics.EmployeeTimeline(r.Context(), port.TimelineReq{
		EmployeeID: chi.URLParam(r, "id"),
		From:       from,
		To:         to,
	})
	if err != nil {
		h.writeError(w, r, "employee timeline", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
