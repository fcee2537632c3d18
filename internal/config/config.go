// Package config provides configuration for the tutor client and the dev
// server, loaded from environment variables with command-line flag
// overrides.
package config

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
)

// Client holds configuration for the terminal client.
type Client struct {
	// BaseURL is the backend base URL.
	BaseURL string `env:"TUTORCHAT_URL, default=http://127.0.0.1:8000"`

	// TokenFile is the path of the persisted credential. Defaults to
	// $XDG_CONFIG_HOME/tutorchat/token (resolved in ParseClient when empty).
	TokenFile string `env:"TUTORCHAT_TOKEN_FILE"`

	// LogFile receives client logs; empty disables logging. The TUI owns
	// stdout, so there is no terminal logging option.
	LogFile string `env:"TUTORCHAT_LOG_FILE"`

	// LogLevel is the zap level for the client log file.
	LogLevel string `env:"TUTORCHAT_LOG_LEVEL, default=info"`

	// Subject is the tutoring subject preselected in the chat view.
	Subject string `env:"TUTORCHAT_SUBJECT, default=programming"`
}

// Server holds configuration for the in-memory dev server.
type Server struct {
	// Addr is the listen address.
	Addr string `env:"TUTORCHAT_ADDR, default=127.0.0.1:8000"`

	// JWTSecret signs issued access tokens.
	JWTSecret string `env:"TUTORCHAT_JWT_SECRET, default=dev-only-secret"`

	// TokenTTLMinutes is the access token lifetime.
	TokenTTLMinutes int `env:"TUTORCHAT_TOKEN_TTL, default=720"`

	// AdminEmail and AdminPassword seed the initial administrator account.
	AdminEmail    string `env:"TUTORCHAT_ADMIN_EMAIL, default=admin@eden.local"`
	AdminPassword string `env:"TUTORCHAT_ADMIN_PASSWORD, default=admin"`

	// LogLevel is the zap level for server logs.
	LogLevel string `env:"TUTORCHAT_LOG_LEVEL, default=info"`
}

// ParseClient loads client configuration from the environment and then
// applies command-line flags on top.
func ParseClient() *Client {
	var cfg Client
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		log.Fatalf("config: %v", err)
	}

	flag.StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "backend base URL")
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path of the stored credential")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file path (empty disables logging)")
	flag.StringVar(&cfg.Subject, "subject", cfg.Subject, "default tutoring subject")
	flag.Parse()

	if cfg.TokenFile == "" {
		cfg.TokenFile = defaultTokenFile()
	}
	return &cfg
}

// ParseServer loads dev server configuration from the environment and then
// applies command-line flags on top.
func ParseServer() *Server {
	var cfg Server
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		log.Fatalf("config: %v", err)
	}

	flag.StringVar(&cfg.Addr, "a", cfg.Addr, "listen address (ip:port)")
	flag.StringVar(&cfg.AdminEmail, "admin-email", cfg.AdminEmail, "seeded admin email")
	flag.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "seeded admin password")
	flag.Parse()

	return &cfg
}

// defaultTokenFile resolves the per-user credential path, falling back to
// the working directory when no config dir is available.
func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tutorchat-token"
	}
	return filepath.Join(dir, "tutorchat", "token")
}
