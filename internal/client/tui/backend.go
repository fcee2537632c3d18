package tui

import (
	"context"
	"io"

	"github.com/edenai/tutorchat/internal/client/api"
	"github.com/edenai/tutorchat/internal/models"
)

// Backend is the slice of the gateway the TUI depends on. *api.Client
// satisfies it; tests substitute a scripted fake.
type Backend interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password, fullName string) error
	ChangePassword(ctx context.Context, current, new string) error
	Ask(ctx context.Context, question, subject string, history []models.ChatMessage) (string, error)

	SystemStatus(ctx context.Context) (*models.SystemStatus, error)
	ListUsers(ctx context.Context) ([]models.AdminUser, error)
	SetUserRole(ctx context.Context, userID int64, role models.Role) (*models.AdminUser, error)
	SetUserActive(ctx context.Context, userID int64, active bool) (*models.AdminUser, error)

	ListKnowledgeDocs(ctx context.Context) ([]models.KnowledgeDoc, error)
	UploadKnowledgeDoc(ctx context.Context, filename string, content io.Reader) (*api.UploadResult, error)
	DeleteKnowledgeDoc(ctx context.Context, docID int64) error
	ReloadKnowledge(ctx context.Context) error
}

var _ Backend = (*api.Client)(nil)
