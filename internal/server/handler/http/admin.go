package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/edenai/tutorchat/internal/models"
	"github.com/edenai/tutorchat/internal/repository"
	"github.com/edenai/tutorchat/internal/service"
)

// AdminHandler serves user management and system status. Every route is
// behind the admin middleware.
type AdminHandler struct {
	Users     *repository.UserRepository
	Knowledge *service.KnowledgeService
}

type roleUpdate struct {
	Role models.Role `json:"role"`
}

type activeUpdate struct {
	IsActive *bool `json:"is_active"`
}

// SystemStatus handles GET /admin/system/status.
func (h *AdminHandler) SystemStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.SystemStatus{
		OK: true,
		Services: map[string]string{
			"llm":          "ok",
			"vector_store": "ok",
		},
		Stats: models.SystemStats{
			Users:         h.Users.Count(),
			KnowledgeDocs: h.Knowledge.Count(),
		},
	})
}

// ListUsers handles GET /admin/users, newest first.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, _ *http.Request) {
	records := h.Users.List()
	out := make([]models.AdminUser, len(records))
	for i := range records {
		out[i] = records[i].AdminView()
	}
	writeJSON(w, http.StatusOK, out)
}

// SetRole handles PATCH /admin/users/{id}/role.
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	var req roleUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Role != models.RoleUser && req.Role != models.RoleAdmin {
		http.Error(w, "role must be 'user' or 'admin'", http.StatusBadRequest)
		return
	}
	u, err := h.Users.SetRole(id, req.Role)
	if err != nil {
		userError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u.AdminView())
}

// SetActive handles PATCH /admin/users/{id}/active.
func (h *AdminHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	var req activeUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsActive == nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	u, err := h.Users.SetActive(id, *req.IsActive)
	if err != nil {
		userError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u.AdminView())
}

func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func userError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrUserNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}
