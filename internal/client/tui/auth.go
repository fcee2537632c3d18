package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/edenai/tutorchat/internal/models"
)

const (
	authFieldEmail = iota
	authFieldFullName
	authFieldPassword
	authFieldConfirm
	authFieldCount
)

// errAdminRegister rejects admin self-registration before any network call
// is made.
var errAdminRegister = errors.New("admin accounts cannot be registered")

// authForm is a submitted snapshot of the auth screen.
type authForm struct {
	loginType models.LoginType
	mode      models.AuthMode
	email     string
	password  string
	fullName  string
}

// authModel renders the login/registration screen and holds the login-flow
// selector (loginType, authMode).
type authModel struct {
	loginType models.LoginType
	mode      models.AuthMode

	inputs [authFieldCount]textinput.Model
	focus  int

	errText   string
	restoring bool
	busy      bool
}

func newAuthModel() authModel {
	m := authModel{
		loginType: models.LoginTypeUser,
		mode:      models.AuthModeLogin,
	}

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	email.Focus()

	fullName := textinput.New()
	fullName.Placeholder = "full name (optional)"
	fullName.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.EchoMode = textinput.EchoPassword
	confirm.CharLimit = 128

	m.inputs[authFieldEmail] = email
	m.inputs[authFieldFullName] = fullName
	m.inputs[authFieldPassword] = password
	m.inputs[authFieldConfirm] = confirm
	return m
}

// reset restores the post-logout defaults: user login, empty fields.
func (m *authModel) reset() {
	m.loginType = models.LoginTypeUser
	m.mode = models.AuthModeLogin
	m.errText = ""
	m.busy = false
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = authFieldEmail
	m.inputs[authFieldEmail].Focus()
}

// fieldVisible reports whether the field applies to the current auth mode.
func (m *authModel) fieldVisible(i int) bool {
	if m.mode == models.AuthModeRegister {
		return true
	}
	return i == authFieldEmail || i == authFieldPassword
}

func (m *authModel) nextField(step int) {
	m.inputs[m.focus].Blur()
	for {
		m.focus = (m.focus + step + authFieldCount) % authFieldCount
		if m.fieldVisible(m.focus) {
			break
		}
	}
	m.inputs[m.focus].Focus()
}

// form validates the screen and returns a snapshot ready to submit.
// Admin registration is rejected here, client-side, so no network call is
// ever made for it.
func (m *authModel) form() (authForm, error) {
	f := authForm{
		loginType: m.loginType,
		mode:      m.mode,
		email:     strings.TrimSpace(m.inputs[authFieldEmail].Value()),
		password:  m.inputs[authFieldPassword].Value(),
		fullName:  strings.TrimSpace(m.inputs[authFieldFullName].Value()),
	}
	if f.loginType == models.LoginTypeAdmin && f.mode == models.AuthModeRegister {
		return authForm{}, errAdminRegister
	}
	if f.email == "" || f.password == "" {
		return authForm{}, errors.New("email and password are required")
	}
	if f.mode == models.AuthModeRegister && m.inputs[authFieldConfirm].Value() != f.password {
		return authForm{}, errors.New("passwords do not match")
	}
	return f, nil
}

func (m authModel) update(msg tea.Msg) (authModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && !m.busy {
		switch key.String() {
		case "tab", "down":
			m.nextField(1)
			return m, nil
		case "shift+tab", "up":
			m.nextField(-1)
			return m, nil
		case "ctrl+t":
			if m.loginType == models.LoginTypeUser {
				m.loginType = models.LoginTypeAdmin
				// register is never offered for admin accounts
				m.mode = models.AuthModeLogin
			} else {
				m.loginType = models.LoginTypeUser
			}
			m.errText = ""
			return m, nil
		case "ctrl+r":
			if m.loginType == models.LoginTypeAdmin {
				m.errText = errAdminRegister.Error()
				return m, nil
			}
			if m.mode == models.AuthModeLogin {
				m.mode = models.AuthModeRegister
			} else {
				m.mode = models.AuthModeLogin
			}
			m.errText = ""
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m authModel) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Eden Tutor"))
	b.WriteString("\n\n")

	b.WriteString(renderTabs(
		[]string{"User", "Admin"},
		map[models.LoginType]int{models.LoginTypeUser: 0, models.LoginTypeAdmin: 1}[m.loginType],
	))
	b.WriteString("   ")
	if m.loginType == models.LoginTypeUser {
		b.WriteString(renderTabs(
			[]string{"Sign in", "Register"},
			map[models.AuthMode]int{models.AuthModeLogin: 0, models.AuthModeRegister: 1}[m.mode],
		))
	} else {
		b.WriteString(subtleStyle.Render("Sign in"))
	}
	b.WriteString("\n\n")

	for i := range m.inputs {
		if !m.fieldVisible(i) {
			continue
		}
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.restoring {
		b.WriteString("\n" + subtleStyle.Render("checking stored session..."))
	}
	if m.busy {
		b.WriteString("\n" + subtleStyle.Render("signing in..."))
	}
	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText))
	}

	b.WriteString("\n" + helpStyle.Render(
		"enter submit · tab next field · ctrl+t user/admin · ctrl+r login/register · ctrl+c quit"))
	return b.String()
}

func renderTabs(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = activeTabStyle.Render(l)
		} else {
			parts[i] = inactiveTabStyle.Render(l)
		}
	}
	return fmt.Sprintf("[ %s ]", strings.Join(parts, " | "))
}
