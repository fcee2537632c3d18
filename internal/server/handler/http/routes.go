package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/edenai/tutorchat/internal/middleware"
)

// NewRouter constructs the dev server's HTTP handler.
//
// Routes:
//
//	POST  /auth/register                   public
//	POST  /auth/login                      public (form-encoded)
//	GET   /auth/me                         bearer
//	POST  /auth/change-password            bearer
//	POST  /api/ask                         bearer
//	GET   /admin/system/status             bearer, admin
//	GET   /admin/users                     bearer, admin
//	PATCH /admin/users/{id}/role           bearer, admin
//	PATCH /admin/users/{id}/active         bearer, admin
//	GET   /admin/knowledge                 bearer, admin
//	POST  /admin/knowledge/upload          bearer, admin (multipart)
//	DELETE /admin/knowledge/{id}           bearer, admin
//	POST  /admin/knowledge/reload          bearer, admin
func NewRouter(
	authHandler *AuthHandler,
	askHandler *AskHandler,
	adminHandler *AdminHandler,
	knowledgeHandler *KnowledgeHandler,
	authn *middleware.Authenticator,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authn.RequireUser)
			r.Get("/me", authHandler.Me)
			r.Post("/change-password", authHandler.ChangePassword)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(authn.RequireUser)
		r.Post("/ask", askHandler.Ask)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(authn.RequireAdmin)
		r.Get("/system/status", adminHandler.SystemStatus)
		r.Get("/users", adminHandler.ListUsers)
		r.Patch("/users/{id}/role", adminHandler.SetRole)
		r.Patch("/users/{id}/active", adminHandler.SetActive)
		r.Get("/knowledge", knowledgeHandler.List)
		r.Post("/knowledge/upload", knowledgeHandler.Upload)
		r.Delete("/knowledge/{id}", knowledgeHandler.Delete)
		r.Post("/knowledge/reload", knowledgeHandler.Reload)
	})

	return r
}
