// Package tui is the terminal application shell. It composes the auth,
// chat, admin and settings screens, routes navigation through the view
// gate, and dispatches user actions to the backend gateway.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/edenai/tutorchat/internal/client/session"
	"github.com/edenai/tutorchat/internal/client/view"
	"github.com/edenai/tutorchat/internal/models"
)

// Model is the root bubbletea model. It is the single owner of navigation
// state; the session manager is the single owner of credential state.
type Model struct {
	backend  Backend
	sessions *session.Manager
	log      *zap.Logger

	// requested is the view the user asked for. The gate re-resolves it
	// against the current session on every render.
	requested models.View

	auth     authModel
	chat     chatModel
	admin    adminModel
	settings settingsModel

	width  int
	height int
}

// NewModel builds the shell.
func NewModel(backend Backend, sessions *session.Manager, subject string, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		backend:   backend,
		sessions:  sessions,
		log:       log,
		requested: models.ViewChat,
		auth:      newAuthModel(),
		chat:      newChatModel(subject),
		admin:     newAdminModel(),
		settings:  newSettingsModel(),
	}
	m.auth.restoring = true
	return m
}

func (m Model) Init() tea.Cmd {
	return m.restoreSession()
}

// Session returns the current session, nil when logged out.
func (m Model) Session() *models.Session { return m.sessions.Session() }

// ActiveView returns the view that would be rendered right now, after the
// gate has been applied.
func (m Model) ActiveView() models.View {
	return view.Resolve(m.requested, m.sessions.Session())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.chat.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case sessionRestoredMsg:
		m.auth.restoring = false
		// A failed restore lands on the auth screen with no error banner:
		// the stored credential was already cleared by the resolver.
		if msg.session != nil {
			m.requested = models.ViewChat
		}
		return m, nil

	case authDoneMsg:
		return m.updateAuthDone(msg)

	case askDoneMsg:
		m.chat.loading = false
		if msg.err != nil {
			m.chat.errText = msg.err.Error()
		} else {
			m.chat.appendAssistant(msg.answer)
		}
		return m, nil

	case passwordChangedMsg:
		m.settings.busy = false
		if msg.err != nil {
			m.settings.errText = msg.err.Error()
		} else {
			m.settings.reset()
			m.settings.infoText = "password changed"
		}
		return m, nil

	case statusLoadedMsg:
		m.admin.loading = false
		if msg.err != nil {
			m.admin.errText = msg.err.Error()
		} else {
			m.admin.status = msg.status
		}
		return m, nil

	case usersLoadedMsg:
		m.admin.loading = false
		if msg.err != nil {
			m.admin.errText = msg.err.Error()
		} else {
			m.admin.setUsers(msg.users)
		}
		return m, nil

	case userUpdatedMsg:
		m.admin.loading = false
		if msg.err != nil {
			m.admin.errText = msg.err.Error()
			return m, nil
		}
		m.admin.infoText = "updated " + msg.user.Email
		return m, m.loadUsers()

	case docsLoadedMsg:
		m.admin.loading = false
		if msg.err != nil {
			m.admin.errText = msg.err.Error()
		} else {
			m.admin.setDocs(msg.docs)
		}
		return m, nil

	case docUploadedMsg:
		m.admin.loading = false
		if msg.err != nil {
			m.admin.errText = msg.err.Error()
			return m, nil
		}
		m.admin.infoText = "uploaded " + msg.name
		return m, m.loadDocs()

	case docDeletedMsg:
		m.admin.loading = false
		if msg.err != nil {
			m.admin.errText = msg.err.Error()
			return m, nil
		}
		m.admin.infoText = "document deleted"
		return m, m.loadDocs()

	case reloadDoneMsg:
		// Best effort: a failed rebuild is shown but the current document
		// listing stays as it is.
		m.admin.loading = false
		if msg.err != nil {
			m.admin.errText = msg.err.Error()
		} else {
			m.admin.infoText = "knowledge index rebuilt"
		}
		return m, nil
	}

	return m.updateScreen(msg)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.sessions.Session() != nil {
		switch msg.String() {
		case "f1":
			m.requested = models.ViewChat
			return m, nil
		case "f2":
			// Requested unconditionally; the gate silently redirects
			// non-admins back to chat at render time.
			m.requested = models.ViewAdmin
			if m.sessions.Session().IsAdmin() {
				return m, m.loadAdminTab()
			}
			return m, nil
		case "f3":
			m.requested = models.ViewSettings
			return m, nil
		case "ctrl+l":
			return m.logout()
		}
	}

	return m.updateScreen(msg)
}

// updateScreen routes a message to whichever screen is showing.
func (m Model) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.sessions.Session() == nil {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" && !m.auth.busy {
			return m.submitAuth()
		}
		m.auth, cmd = m.auth.update(msg)
		return m, cmd
	}

	switch m.ActiveView() {
	case models.ViewChat:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
			return m.sendMessage()
		}
		m.chat, cmd = m.chat.update(msg)
	case models.ViewSettings:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" && !m.settings.busy {
			return m.submitPasswordChange()
		}
		m.settings, cmd = m.settings.update(msg)
	case models.ViewAdmin:
		return m.updateAdmin(msg)
	}
	return m, cmd
}

func (m Model) updateAdmin(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.admin, cmd = m.admin.update(msg)
		return m, cmd
	}

	if m.admin.uploadFocused {
		switch key.String() {
		case "esc":
			m.admin.uploadFocused = false
			m.admin.uploadInput.Blur()
			return m, nil
		case "enter":
			path := strings.TrimSpace(m.admin.uploadInput.Value())
			m.admin.uploadFocused = false
			m.admin.uploadInput.Blur()
			m.admin.uploadInput.SetValue("")
			if path == "" {
				return m, nil
			}
			m.admin.loading = true
			return m, m.uploadDoc(path)
		}
		var cmd tea.Cmd
		m.admin, cmd = m.admin.update(msg)
		return m, cmd
	}

	switch key.String() {
	case "tab":
		m.admin.nextTab()
		return m, m.loadAdminTab()
	case "r":
		if m.admin.tab == tabKnowledge {
			m.admin.loading = true
			return m, m.reloadKnowledge()
		}
		return m, m.loadAdminTab()
	case "u":
		if m.admin.tab == tabKnowledge {
			m.admin.uploadFocused = true
			m.admin.uploadInput.Focus()
			return m, nil
		}
	case "d":
		if m.admin.tab == tabKnowledge {
			if doc := m.admin.selectedDoc(); doc != nil {
				m.admin.loading = true
				return m, m.deleteDoc(doc.ID)
			}
		}
	case "a":
		if m.admin.tab == tabUsers {
			if u := m.admin.selectedUser(); u != nil {
				next := models.RoleAdmin
				if u.Role == models.RoleAdmin {
					next = models.RoleUser
				}
				m.admin.loading = true
				return m, m.setUserRole(u.ID, next)
			}
		}
	case "x":
		if m.admin.tab == tabUsers {
			if u := m.admin.selectedUser(); u != nil {
				m.admin.loading = true
				return m, m.setUserActive(u.ID, !u.IsActive)
			}
		}
	}

	var cmd tea.Cmd
	m.admin, cmd = m.admin.update(msg)
	return m, cmd
}

func (m Model) updateAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	m.auth.busy = false
	if msg.err != nil {
		m.auth.errText = msg.err.Error()
		return m, nil
	}

	m.auth.reset()
	if msg.loginType == models.LoginTypeAdmin {
		// Admin logins land on the dashboard, system tab first.
		m.requested = models.ViewAdmin
		m.admin.tab = tabSystem
		return m, m.loadAdminTab()
	}
	m.requested = models.ViewChat
	return m, nil
}

// logout resets session, credential, view, login selector and the
// conversation. Message history does not survive logout/login cycles.
func (m Model) logout() (tea.Model, tea.Cmd) {
	if err := m.sessions.Logout(); err != nil {
		m.log.Warn("logout: clearing credential failed", zap.Error(err))
	}
	m.requested = models.ViewChat
	m.chat.reset()
	m.auth.reset()
	m.settings.reset()
	m.admin = newAdminModel()
	return m, nil
}

func (m Model) View() string {
	if m.sessions.Session() == nil {
		return m.auth.view()
	}

	var body string
	switch m.ActiveView() {
	case models.ViewAdmin:
		body = m.admin.view()
	case models.ViewSettings:
		body = m.settings.view(m.sessions.Session())
	default:
		body = m.chat.view()
	}
	return body + "\n" + m.statusBar()
}

func (m Model) statusBar() string {
	s := m.sessions.Session()
	who := s.Email
	if s.IsAdmin() {
		who += " (admin)"
	}
	return helpStyle.Render(who + " · f1 chat · f2 admin · f3 settings · ctrl+l logout · ctrl+c quit")
}
