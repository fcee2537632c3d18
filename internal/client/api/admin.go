package api

import (
	"context"
	"fmt"

	"github.com/edenai/tutorchat/internal/models"
)

// Admin operations. The client does not enforce the admin role here; it
// relies on the backend rejecting insufficient-privilege calls and only
// uses the view gate to avoid exposing the UI.

type roleUpdate struct {
	Role models.Role `json:"role"`
}

type activeUpdate struct {
	IsActive bool `json:"is_active"`
}

// SystemStatus fetches the system health report.
func (c *Client) SystemStatus(ctx context.Context) (*models.SystemStatus, error) {
	var out models.SystemStatus
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/admin/system/status")
	if err != nil {
		return nil, &RequestError{Message: err.Error()}
	}
	if resp.IsError() {
		return nil, dataErr(resp)
	}
	return &out, nil
}

// ListUsers fetches all accounts.
func (c *Client) ListUsers(ctx context.Context) ([]models.AdminUser, error) {
	var out []models.AdminUser
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/admin/users")
	if err != nil {
		return nil, &RequestError{Message: err.Error()}
	}
	if resp.IsError() {
		return nil, dataErr(resp)
	}
	return out, nil
}

// SetUserRole changes a user's role and returns the updated record.
func (c *Client) SetUserRole(ctx context.Context, userID int64, role models.Role) (*models.AdminUser, error) {
	var out models.AdminUser
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(roleUpdate{Role: role}).
		SetResult(&out).
		Patch(fmt.Sprintf("/admin/users/%d/role", userID))
	if err != nil {
		return nil, &RequestError{Message: err.Error()}
	}
	if resp.IsError() {
		return nil, dataErr(resp)
	}
	return &out, nil
}

// SetUserActive enables or disables an account and returns the updated
// record.
func (c *Client) SetUserActive(ctx context.Context, userID int64, active bool) (*models.AdminUser, error) {
	var out models.AdminUser
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(activeUpdate{IsActive: active}).
		SetResult(&out).
		Patch(fmt.Sprintf("/admin/users/%d/active", userID))
	if err != nil {
		return nil, &RequestError{Message: err.Error()}
	}
	if resp.IsError() {
		return nil, dataErr(resp)
	}
	return &out, nil
}
