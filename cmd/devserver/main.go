// Package main starts the in-memory development server implementing the
// tutor backend wire contract: auth, tutoring, user management and the
// knowledge base.
package main

import (
	"cmp"
	"fmt"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/edenai/tutorchat/internal/config"
	"github.com/edenai/tutorchat/internal/logger"
	"github.com/edenai/tutorchat/internal/middleware"
	"github.com/edenai/tutorchat/internal/models"
	"github.com/edenai/tutorchat/internal/repository"
	"github.com/edenai/tutorchat/internal/server/handler/http"
	"github.com/edenai/tutorchat/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	options := config.ParseServer()

	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		panic(err)
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	// Everything lives in memory; state is gone on restart.
	users := repository.NewUserRepository()
	docs := repository.NewKnowledgeRepository()

	authService := service.NewAuthService(users, options.JWTSecret,
		time.Duration(options.TokenTTLMinutes)*time.Minute)
	knowledgeService := service.NewKnowledgeService(docs)
	tutorService := service.NewTutorService(knowledgeService)

	if err := authService.Seed(options.AdminEmail, options.AdminPassword, "Administrator", models.RoleAdmin); err != nil {
		zapLogger.Fatal("failed to seed admin account", zap.Error(err))
	}
	zapLogger.Info("seeded admin account", zap.String("email", options.AdminEmail))

	authHandler := &http.AuthHandler{Auth: authService}
	askHandler := &http.AskHandler{Tutor: tutorService}
	adminHandler := &http.AdminHandler{Users: users, Knowledge: knowledgeService}
	knowledgeHandler := &http.KnowledgeHandler{Knowledge: knowledgeService}
	authn := &middleware.Authenticator{Auth: authService}

	router := http.NewRouter(authHandler, askHandler, adminHandler, knowledgeHandler, authn, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	zapLogger.Info("starting dev server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
