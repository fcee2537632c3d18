// Package http provides the dev server's HTTP handlers for the tutor wire
// contract.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edenai/tutorchat/internal/middleware"
	"github.com/edenai/tutorchat/internal/models"
	"github.com/edenai/tutorchat/internal/repository"
	"github.com/edenai/tutorchat/internal/service"
)

// AuthHandler serves registration, login, identity and password change.
type AuthHandler struct {
	Auth *service.AuthService
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Register handles POST /auth/register. The created account is always a
// regular user; there is no way to register an admin.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Auth.Register(req.Email, req.Password, req.FullName); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, repository.ErrEmailTaken) {
			status = http.StatusConflict
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "User created"})
}

// Login handles POST /auth/login. The body is the OAuth2 password form:
// the email is sent in the username field.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	u, err := h.Auth.Authenticate(email, password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, err := h.Auth.IssueToken(u)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me handles GET /auth/me for the authenticated account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, models.Session{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	})
}

// ChangePassword handles POST /auth/change-password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.NewPassword == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Auth.ChangePassword(u.ID, req.CurrentPassword, req.NewPassword); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
