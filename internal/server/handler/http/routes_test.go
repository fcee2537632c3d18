package http

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edenai/tutorchat/internal/client/api"
	"github.com/edenai/tutorchat/internal/client/tokenstore"
	"github.com/edenai/tutorchat/internal/middleware"
	"github.com/edenai/tutorchat/internal/models"
	"github.com/edenai/tutorchat/internal/repository"
	"github.com/edenai/tutorchat/internal/service"
	"go.uber.org/zap"
)

// testServer wires the full dev server and a gateway client against it, so
// these tests exercise both sides of the wire contract.
type testServer struct {
	client *api.Client
	store  *tokenstore.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	users := repository.NewUserRepository()
	auth := service.NewAuthService(users, "test-secret", time.Hour)
	knowledge := service.NewKnowledgeService(repository.NewKnowledgeRepository())
	tutor := service.NewTutorService(knowledge)
	require.NoError(t, auth.Seed("admin@eden.local", "adminpw", "Admin", models.RoleAdmin))

	router := NewRouter(
		&AuthHandler{Auth: auth},
		&AskHandler{Tutor: tutor},
		&AdminHandler{Users: users, Knowledge: knowledge},
		&KnowledgeHandler{Knowledge: knowledge},
		&middleware.Authenticator{Auth: auth},
		zap.NewNop(),
	)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	store := tokenstore.New(filepath.Join(t.TempDir(), "token"))
	return &testServer{
		client: api.New(srv.URL, store, nil),
		store:  store,
	}
}

func (ts *testServer) loginAs(t *testing.T, email, password string) {
	t.Helper()
	tok, err := ts.client.Login(context.Background(), email, password)
	require.NoError(t, err)
	require.NoError(t, ts.store.Save(tok))
}

func TestRegisterLoginMe(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, ts.client.Register(ctx, "a@x.com", "pw", "Alice"))
	ts.loginAs(t, "a@x.com", "pw")

	s, err := ts.client.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", s.Email)
	assert.Equal(t, "Alice", s.FullName)
	assert.Equal(t, models.RoleUser, s.Role)
}

func TestRegister_DuplicateEmailSurfacedVerbatim(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, ts.client.Register(ctx, "a@x.com", "pw", ""))
	err := ts.client.Register(ctx, "a@x.com", "pw", "")
	var authErr *api.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "email already registered", authErr.Message)
}

func TestLogin_BadPassword(t *testing.T) {
	ts := newTestServer(t)

	_, err := ts.client.Login(context.Background(), "admin@eden.local", "wrong")
	var authErr *api.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, 400, authErr.Status)
	assert.Equal(t, "wrong email or password", authErr.Message)
}

func TestMe_WithoutToken(t *testing.T) {
	ts := newTestServer(t)

	_, err := ts.client.Me(context.Background())
	var authErr *api.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, 401, authErr.Status)
}

func TestAsk_RequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	_, err := ts.client.Ask(context.Background(), "q", "programming", nil)
	var permErr *api.PermissionError
	require.ErrorAs(t, err, &permErr)
}

func TestAsk_AnswersFromKnowledge(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	ts.loginAs(t, "admin@eden.local", "adminpw")
	_, err := ts.client.UploadKnowledgeDoc(ctx, "variables.md",
		strings.NewReader("A variable is a named storage location."))
	require.NoError(t, err)

	answer, err := ts.client.Ask(ctx, "what is a variable?", "programming",
		[]models.ChatMessage{{Role: models.ChatRoleUser, Content: "what is a variable?"}})
	require.NoError(t, err)
	assert.Contains(t, answer, "variables.md")
}

func TestAdmin_ForbiddenForRegularUser(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, ts.client.Register(ctx, "u@x.com", "pw", ""))
	ts.loginAs(t, "u@x.com", "pw")

	_, err := ts.client.ListUsers(ctx)
	var permErr *api.PermissionError
	require.ErrorAs(t, err, &permErr)
	assert.Equal(t, "admin privileges required", permErr.Message)
}

func TestAdmin_UserManagement(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, ts.client.Register(ctx, "u@x.com", "pw", "Bob"))
	ts.loginAs(t, "admin@eden.local", "adminpw")

	users, err := ts.client.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	// Newest first: the registered user precedes the seeded admin.
	assert.Equal(t, "u@x.com", users[0].Email)

	promoted, err := ts.client.SetUserRole(ctx, users[0].ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promoted.Role)

	disabled, err := ts.client.SetUserActive(ctx, users[0].ID, false)
	require.NoError(t, err)
	assert.False(t, disabled.IsActive)

	// A disabled account can no longer sign in.
	_, err = ts.client.Login(ctx, "u@x.com", "pw")
	var authErr *api.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "account is disabled", authErr.Message)
}

func TestAdmin_KnowledgeLifecycle(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	ts.loginAs(t, "admin@eden.local", "adminpw")

	res, err := ts.client.UploadKnowledgeDoc(ctx, "loops.txt", strings.NewReader("for loops repeat"))
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, "loops.txt", res.OriginalName)

	docs, err := ts.client.ListKnowledgeDocs(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, int64(16), docs[0].Size)

	status, err := ts.client.SystemStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.OK)
	assert.Equal(t, 1, status.Stats.KnowledgeDocs)
	assert.Equal(t, "ok", status.Services["llm"])
	assert.Equal(t, "ok", status.Services["vector_store"])

	require.NoError(t, ts.client.ReloadKnowledge(ctx))

	require.NoError(t, ts.client.DeleteKnowledgeDoc(ctx, docs[0].ID))
	docs, err = ts.client.ListKnowledgeDocs(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestUpload_RejectsUnsupportedType(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	ts.loginAs(t, "admin@eden.local", "adminpw")

	_, err := ts.client.UploadKnowledgeDoc(ctx, "slides.pdf", strings.NewReader("binary"))
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 400, reqErr.Status)
	assert.Contains(t, reqErr.Message, "unsupported file type")
}

func TestChangePassword_OverTheWire(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, ts.client.Register(ctx, "u@x.com", "old", ""))
	ts.loginAs(t, "u@x.com", "old")

	err := ts.client.ChangePassword(ctx, "wrong", "new")
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "current password is incorrect", reqErr.Message)

	require.NoError(t, ts.client.ChangePassword(ctx, "old", "new"))
	_, err = ts.client.Login(ctx, "u@x.com", "new")
	require.NoError(t, err)
}
