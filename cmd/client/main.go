// Package main starts the terminal client for the tutor backend.
package main

import (
	"cmp"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/edenai/tutorchat/internal/client/api"
	"github.com/edenai/tutorchat/internal/client/session"
	"github.com/edenai/tutorchat/internal/client/tokenstore"
	"github.com/edenai/tutorchat/internal/client/tui"
	"github.com/edenai/tutorchat/internal/config"
	"github.com/edenai/tutorchat/internal/logger"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	options := config.ParseClient()

	// Logs go to a file: once the program enters the alternate screen the
	// terminal belongs to the UI.
	log := logger.New()
	if err := log.InitFile(options.LogLevel, options.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	zapLogger.Info("starting client",
		zap.String("version", cmp.Or(version, "N/A")),
		zap.String("build_date", cmp.Or(buildDate, "N/A")),
		zap.String("backend", options.BaseURL),
	)

	store := tokenstore.New(options.TokenFile)
	backend := api.New(options.BaseURL, store, zapLogger)
	sessions := session.NewManager(store, backend, zapLogger)

	model := tui.NewModel(backend, sessions, options.Subject, zapLogger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		zapLogger.Error("program exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
