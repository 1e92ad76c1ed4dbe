package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"phish-analytics/internal/core/domain"
)

type importEmployeesRequest struct {
	AdminID   string        `json:"adminId" validate:"required"`
	Employees []employeeRow `json:"employees" validate:"required,min=1,max=5000,dive"`
}

type employeeRow struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email" validate:"omitempty,email"`
	Department string `json:"department"`
}

type importEmployeesResponse struct {
	Created int64 `json:"created"`
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.directory.ListEmployees(r.Context(), r.URL.Query().Get("admin_id"))
	if err != nil {
		h.writeError(w, r, "list employees", err)
		return
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	writeJSON(w, http.StatusOK, employees)
}

// handleImportEmployees bulk-imports a roster. Rows without an email and
// emails the admin already has are skipped; the response reports how many
// employees were created.
func (h *Handler) handleImportEmployees(w http.ResponseWriter, r *http.Request) {
	var req importEmployeesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	rows := make([]domain.Employee, 0, len(req.Employees))
	for _, e := range req.Employees {
		rows = append(rows, domain.Employee{
			FirstName:  e.FirstName,
			LastName:   e.LastName,
			Email:      e.Email,
			Department: e.Department,
		})
	}

	n, err := h.directory.ImportEmployees(r.Context(), req.AdminID, rows)
	if err != nil {
		h.writeError(w, r, "import employees", err)
		return
	}
	writeJSON(w, http.StatusOK, importEmployeesResponse{Created: n})
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.directory.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, "delete employee", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
