package api

import (
	"context"

	"go.uber.org/zap"

	"github.com/edenai/tutorchat/internal/models"
)

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Login exchanges credentials for a bearer token. The backend expects the
// OAuth2 password form with the email in the username field. The returned
// token is opaque to the client; persisting it is the caller's job.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": email,
			"password": password,
		}).
		SetResult(&out).
		Post("/auth/login")
	if err != nil {
		return "", &AuthError{Message: err.Error()}
	}
	if resp.IsError() {
		return "", authErr(resp)
	}
	if out.AccessToken == "" {
		return "", &AuthError{Status: resp.StatusCode(), Message: "no access token in response"}
	}
	c.log.Info("logged in", zap.String("email", email))
	return out.AccessToken, nil
}

// Register creates a user account. The role is never sent: accounts always
// start as regular users and the backend rejects anything else. Success
// does not authenticate; a login must follow.
func (c *Client) Register(ctx context.Context, email, password, fullName string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(registerRequest{Email: email, Password: password, FullName: fullName}).
		Post("/auth/register")
	if err != nil {
		return &AuthError{Message: err.Error()}
	}
	if resp.IsError() {
		return authErr(resp)
	}
	return nil
}

// Me resolves the identity behind the current credential. Any failure must
// be treated by the caller as credential invalidation.
func (c *Client) Me(ctx context.Context) (*models.Session, error) {
	var out models.Session
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/auth/me")
	if err != nil {
		return nil, &AuthError{Message: err.Error()}
	}
	if resp.IsError() {
		return nil, authErr(resp)
	}
	return &out, nil
}

// ChangePassword updates the authenticated account's password.
func (c *Client) ChangePassword(ctx context.Context, current, new string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(changePasswordRequest{CurrentPassword: current, NewPassword: new}).
		Post("/auth/change-password")
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	if resp.IsError() {
		return dataErr(resp)
	}
	return nil
}
