// Package view decides whether a requested screen is permitted for the
// current session.
package view

import "github.com/edenai/tutorchat/internal/models"

// Resolve maps a requested view to the one that may actually be shown.
// Admin is reachable only with the admin role; an insufficient role falls
// back to chat silently, without surfacing a permission error. A nil
// session makes the requested view irrelevant: the shell substitutes the
// auth screen regardless, and chat is returned here as the view to land on
// after the next login. Callers re-evaluate on every render, not only at
// navigation time.
func Resolve(requested models.View, s *models.Session) models.View {
	if s == nil {
		return models.ViewChat
	}
	if requested == models.ViewAdmin && !s.IsAdmin() {
		return models.ViewChat
	}
	return requested
}
