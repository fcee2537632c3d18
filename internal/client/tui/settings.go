package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/edenai/tutorchat/internal/models"
)

const (
	settingsFieldCurrent = iota
	settingsFieldNew
	settingsFieldConfirm
	settingsFieldCount
)

// settingsModel renders the account screen: identity summary plus the
// password change form.
type settingsModel struct {
	inputs [settingsFieldCount]textinput.Model
	focus  int

	busy     bool
	errText  string
	infoText string
}

func newSettingsModel() settingsModel {
	m := settingsModel{}
	labels := [settingsFieldCount]string{"current password", "new password", "confirm new password"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.EchoMode = textinput.EchoPassword
		ti.CharLimit = 128
		m.inputs[i] = ti
	}
	m.inputs[settingsFieldCurrent].Focus()
	return m
}

func (m *settingsModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = settingsFieldCurrent
	m.inputs[m.focus].Focus()
	m.busy = false
	m.errText = ""
	m.infoText = ""
}

// form validates and returns (current, new) passwords.
func (m *settingsModel) form() (string, string, error) {
	current := m.inputs[settingsFieldCurrent].Value()
	newPw := m.inputs[settingsFieldNew].Value()
	confirm := m.inputs[settingsFieldConfirm].Value()
	if current == "" || newPw == "" {
		return "", "", errors.New("both passwords are required")
	}
	if newPw != confirm {
		return "", "", errors.New("new passwords do not match")
	}
	return current, newPw, nil
}

func (m settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && !m.busy {
		switch key.String() {
		case "tab", "down":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % settingsFieldCount
			m.inputs[m.focus].Focus()
			return m, nil
		case "shift+tab", "up":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus - 1 + settingsFieldCount) % settingsFieldCount
			m.inputs[m.focus].Focus()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m settingsModel) view(s *models.Session) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings"))
	b.WriteString("\n\n")
	if s != nil {
		b.WriteString(subtleStyle.Render("email: ") + s.Email + "\n")
		if s.FullName != "" {
			b.WriteString(subtleStyle.Render("name:  ") + s.FullName + "\n")
		}
		b.WriteString(subtleStyle.Render("role:  ") + string(s.Role) + "\n\n")
	}
	b.WriteString("Change password\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	if m.busy {
		b.WriteString("\n" + subtleStyle.Render("updating..."))
	}
	if m.infoText != "" {
		b.WriteString("\n" + infoStyle.Render(m.infoText))
	}
	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText))
	}
	b.WriteString("\n" + helpStyle.Render("enter submit · tab next field"))
	return b.String()
}
