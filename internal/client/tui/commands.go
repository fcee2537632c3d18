package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/edenai/tutorchat/internal/client/api"
	"github.com/edenai/tutorchat/internal/models"
)

// Commands run off the update loop and report back through the messages in
// messages.go. Each one issues a single request; none retry.

func (m Model) restoreSession() tea.Cmd {
	sessions := m.sessions
	return func() tea.Msg {
		s, err := sessions.Restore(context.Background())
		return sessionRestoredMsg{session: s, err: err}
	}
}

// submitAuth validates the auth form and runs the login/registration flow.
// Validation failures (including admin+register) never reach the network.
func (m Model) submitAuth() (tea.Model, tea.Cmd) {
	form, err := m.auth.form()
	if err != nil {
		m.auth.errText = err.Error()
		return m, nil
	}
	m.auth.busy = true
	m.auth.errText = ""
	return m, m.authenticate(form)
}

// authenticate runs optional registration, then login, then identity
// resolution, then the admin role check. Registration
// never auto-authenticates; a registration failure stops the flow before
// any login attempt. An admin login whose resolved role is not admin is
// rolled back: the just-saved credential is discarded and the flow fails
// with a permission error.
func (m Model) authenticate(form authForm) tea.Cmd {
	backend, sessions := m.backend, m.sessions
	return func() tea.Msg {
		ctx := context.Background()

		if form.mode == models.AuthModeRegister {
			if err := backend.Register(ctx, form.email, form.password, form.fullName); err != nil {
				return authDoneMsg{err: err, loginType: form.loginType}
			}
		}

		token, err := backend.Login(ctx, form.email, form.password)
		if err != nil {
			return authDoneMsg{err: err, loginType: form.loginType}
		}

		sess, err := sessions.Establish(ctx, token)
		if err != nil {
			return authDoneMsg{err: err, loginType: form.loginType}
		}

		if form.loginType == models.LoginTypeAdmin && !sess.IsAdmin() {
			_ = sessions.Logout()
			return authDoneMsg{
				err:       &api.PermissionError{Message: "this account has no admin privileges"},
				loginType: form.loginType,
			}
		}

		return authDoneMsg{session: sess, loginType: form.loginType}
	}
}

// sendMessage submits the typed question. While an ask is in flight the
// action is a no-op, so a question can never be submitted twice.
func (m Model) sendMessage() (tea.Model, tea.Cmd) {
	if m.chat.loading {
		return m, nil
	}
	question := strings.TrimSpace(m.chat.input.Value())
	if question == "" {
		return m, nil
	}

	m.chat.errText = ""
	m.chat.appendUser(question)
	m.chat.input.SetValue("")
	m.chat.loading = true

	backend := m.backend
	subject := m.chat.subject
	history := m.chat.history()
	ask := func() tea.Msg {
		answer, err := backend.Ask(context.Background(), question, subject, history)
		return askDoneMsg{answer: answer, err: err}
	}
	return m, tea.Batch(m.chat.spin.Tick, ask)
}

func (m Model) submitPasswordChange() (tea.Model, tea.Cmd) {
	current, newPw, err := m.settings.form()
	if err != nil {
		m.settings.errText = err.Error()
		return m, nil
	}
	m.settings.busy = true
	m.settings.errText = ""
	m.settings.infoText = ""

	backend := m.backend
	return m, func() tea.Msg {
		return passwordChangedMsg{err: backend.ChangePassword(context.Background(), current, newPw)}
	}
}

// loadAdminTab fetches the data behind the currently selected admin tab.
func (m Model) loadAdminTab() tea.Cmd {
	switch m.admin.tab {
	case tabUsers:
		return m.loadUsers()
	case tabKnowledge:
		return m.loadDocs()
	default:
		return m.loadStatus()
	}
}

func (m Model) loadStatus() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		status, err := backend.SystemStatus(context.Background())
		return statusLoadedMsg{status: status, err: err}
	}
}

func (m Model) loadUsers() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		users, err := backend.ListUsers(context.Background())
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m Model) setUserRole(userID int64, role models.Role) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		u, err := backend.SetUserRole(context.Background(), userID, role)
		return userUpdatedMsg{user: u, err: err}
	}
}

func (m Model) setUserActive(userID int64, active bool) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		u, err := backend.SetUserActive(context.Background(), userID, active)
		return userUpdatedMsg{user: u, err: err}
	}
}

func (m Model) loadDocs() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		docs, err := backend.ListKnowledgeDocs(context.Background())
		return docsLoadedMsg{docs: docs, err: err}
	}
}

func (m Model) uploadDoc(path string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return docUploadedMsg{err: err}
		}
		defer f.Close()
		res, err := backend.UploadKnowledgeDoc(context.Background(), filepath.Base(path), f)
		if err != nil {
			return docUploadedMsg{err: err}
		}
		return docUploadedMsg{name: res.OriginalName}
	}
}

func (m Model) deleteDoc(docID int64) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		return docDeletedMsg{err: backend.DeleteKnowledgeDoc(context.Background(), docID)}
	}
}

func (m Model) reloadKnowledge() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		return reloadDoneMsg{err: backend.ReloadKnowledge(context.Background())}
	}
}
