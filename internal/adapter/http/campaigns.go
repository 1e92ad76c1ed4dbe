package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"phish-analytics/internal/core/domain"
	"phish-analytics/internal/core/port"
)

type createCampaignRequest struct {
	AdminID     string `json:"adminId"`
	Name        string `json:"name" validate:"required,max=200"`
	Platform    string `json:"platform" validate:"required,platform"`
	Subject     string `json:"subject" validate:"max=500"`
	SenderEmail string `json:"senderEmail" validate:"omitempty,email"`
}

type sendCampaignRequest struct {
	Platform    string   `json:"platform" validate:"omitempty,platform"`
	EmployeeIDs []string `json:"employeeIds" validate:"required,min=1,dive,required"`
}

type sendCampaignResponse struct {
	Sent int64 `json:"sent"`
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	c, err := h.tracking.CreateCampaign(r.Context(), domain.Campaign{
		AdminID:     req.AdminID,
		Name:        req.Name,
		Platform:    domain.Platform(req.Platform),
		Subject:     req.Subject,
		SenderEmail: req.SenderEmail,
	})
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.tracking.ListCampaigns(r.Context(), r.URL.Query().Get("admin_id"))
	if err != nil {
		h.writeError(w, r, "list campaigns", err)
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	writeJSON(w, http.StatusOK, campaigns)
}

// handleSendCampaign logs a sent event for each listed employee. Delivery of
// the email itself happens elsewhere. Unknown campaigns produce HTTP 404.
func (h *Handler) handleSendCampaign(w http.ResponseWriter, r *http.Request) {
	var req sendCampaignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	n, err := h.tracking.SendCampaign(r.Context(), port.SendCampaignReq{
		CampaignID:  chi.URLParam(r, "id"),
		Platform:    domain.Platform(req.Platform),
		EmployeeIDs: req.EmployeeIDs,
	})
	if err != nil {
		h.writeError(w, r, "send campaign", err)
		return
	}
	writeJSON(w, http.StatusOK, sendCampaignResponse{Sent: n})
}
