package view

import (
	"testing"

	"github.com/edenai/tutorchat/internal/models"
)

func TestResolve_AdminRequiresAdminRole(t *testing.T) {
	userSession := &models.Session{ID: 1, Email: "a@x.com", Role: models.RoleUser}
	adminSession := &models.Session{ID: 2, Email: "b@x.com", Role: models.RoleAdmin}

	tests := []struct {
		name      string
		requested models.View
		session   *models.Session
		want      models.View
	}{
		{"admin view for user falls back to chat", models.ViewAdmin, userSession, models.ViewChat},
		{"admin view for admin is allowed", models.ViewAdmin, adminSession, models.ViewAdmin},
		{"chat passes through for user", models.ViewChat, userSession, models.ViewChat},
		{"settings passes through for user", models.ViewSettings, userSession, models.ViewSettings},
		{"settings passes through for admin", models.ViewSettings, adminSession, models.ViewSettings},
		{"nil session ignores requested view", models.ViewAdmin, nil, models.ViewChat},
		{"nil session ignores settings too", models.ViewSettings, nil, models.ViewChat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.requested, tt.session); got != tt.want {
				t.Errorf("Resolve(%q) = %q; want %q", tt.requested, got, tt.want)
			}
		})
	}
}

func TestResolve_NonAdminRolesNeverReachAdmin(t *testing.T) {
	// Any role other than admin, including unknown ones, is redirected.
	for _, role := range []models.Role{models.RoleUser, "moderator", ""} {
		s := &models.Session{ID: 1, Email: "a@x.com", Role: role}
		if got := Resolve(models.ViewAdmin, s); got != models.ViewChat {
			t.Errorf("Resolve(admin) with role %q = %q; want chat", role, got)
		}
	}
}
