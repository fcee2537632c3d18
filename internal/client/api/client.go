// Package api is the typed gateway to the tutor backend. Every operation
// issues exactly one HTTP request: no retries, no client-side timeout. A
// request either resolves, fails, or stays pending until the program exits;
// failures are surfaced to the user for manual retry.
package api

import (
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenSource supplies the current credential. It is consulted at call
// time for every request, so a just-saved or just-cleared credential is
// always the one sent.
type TokenSource interface {
	// Token returns the active bearer credential, or "" when logged out.
	Token() string
}

// Client issues typed requests against the backend.
type Client struct {
	http   *resty.Client
	tokens TokenSource
	log    *zap.Logger
}

// New builds a Client for the given base URL. tokens may serve an empty
// token; unauthenticated endpoints ignore it.
func New(baseURL string, tokens TokenSource, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Client{
		http:   resty.New().SetBaseURL(strings.TrimRight(baseURL, "/")),
		tokens: tokens,
		log:    log,
	}
	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		if tok := c.tokens.Token(); tok != "" {
			req.SetHeader("Authorization", "Bearer "+tok)
		}
		return nil
	})
	return c
}

// body returns the response body as a trimmed string, for surfacing backend
// error messages verbatim.
func body(resp *resty.Response) string {
	return strings.TrimSpace(string(resp.Body()))
}

// authErr maps a non-2xx auth endpoint response to an AuthError.
func authErr(resp *resty.Response) error {
	return &AuthError{Status: resp.StatusCode(), Message: body(resp)}
}

// dataErr maps a non-2xx response on a data operation. 401/403 become
// PermissionError so callers can distinguish insufficient privilege from
// plain failures; everything else is a RequestError.
func dataErr(resp *resty.Response) error {
	switch resp.StatusCode() {
	case 401, 403:
		return &PermissionError{Message: body(resp)}
	default:
		return &RequestError{Status: resp.StatusCode(), Message: body(resp)}
	}
}
