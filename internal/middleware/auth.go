// Package middleware provides HTTP middlewares for authentication and
// request logging on the dev server.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/edenai/tutorchat/internal/models"
	"github.com/edenai/tutorchat/internal/repository"
	"github.com/edenai/tutorchat/internal/service"
)

type ctxKey string

const userKey ctxKey = "user"

// Authenticator validates bearer tokens and loads the account behind them.
type Authenticator struct {
	Auth *service.AuthService
}

// RequireUser rejects requests without a valid bearer token. On success
// the resolved account is stored in the request context. Deactivated
// accounts are rejected even when their token is otherwise valid.
func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			http.Error(w, "not authenticated", http.StatusUnauthorized)
			return
		}
		u, err := a.Auth.ResolveToken(token)
		if err != nil {
			http.Error(w, service.ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}
		if !u.IsActive {
			http.Error(w, "account is disabled", http.StatusForbidden)
			return
		}
		ctx := context.WithValue(r.Context(), userKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin is RequireUser plus an admin role check.
func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return a.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := UserFromContext(r.Context())
		if u == nil || u.Role != models.RoleAdmin {
			http.Error(w, "admin privileges required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// UserFromContext returns the authenticated account stored by RequireUser,
// or nil.
func UserFromContext(ctx context.Context) *repository.UserRecord {
	u, _ := ctx.Value(userKey).(*repository.UserRecord)
	return u
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, prefix))
	return token, token != ""
}
