package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/edenai/tutorchat/internal/models"
)

// chatSubjects are the selectable tutoring subjects, cycled with ctrl+s.
var chatSubjects = []string{"programming", "python", "java", "frontend", "algorithms"}

// chatModel renders the tutoring conversation. The conversation is
// append-only and lives only for the current login: logout clears it.
type chatModel struct {
	messages []models.ChatMessage
	subject  string
	subjects []string

	input textinput.Model
	vp    viewport.Model
	spin  spinner.Model

	// loading guards against duplicate submissions: while an ask is in
	// flight the input is not accepted.
	loading bool
	errText string
	ready   bool
}

func newChatModel(subject string) chatModel {
	input := textinput.New()
	input.Placeholder = "ask the tutor..."
	input.CharLimit = 2000
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	// A configured subject outside the built-in set is still selectable;
	// it leads the cycle.
	subjects := chatSubjects
	known := false
	for _, opt := range subjects {
		if opt == subject {
			known = true
			break
		}
	}
	if !known {
		subjects = append([]string{subject}, chatSubjects...)
	}

	return chatModel{
		subject:  subject,
		subjects: subjects,
		input:    input,
		spin:     s,
	}
}

// cycleSubject advances to the next tutoring subject. The change applies to
// the next question; messages already sent keep the subject they were asked
// under.
func (m *chatModel) cycleSubject() {
	for i, s := range m.subjects {
		if s == m.subject {
			m.subject = m.subjects[(i+1)%len(m.subjects)]
			return
		}
	}
	m.subject = m.subjects[0]
}

// reset drops the conversation; called on logout.
func (m *chatModel) reset() {
	m.messages = nil
	m.errText = ""
	m.loading = false
	m.input.SetValue("")
	m.refresh()
}

func (m *chatModel) setSize(width, height int) {
	if !m.ready {
		m.vp = viewport.New(width, height-6)
		m.ready = true
	} else {
		m.vp.Width = width
		m.vp.Height = height - 6
	}
	m.input.Width = width - 4
	m.refresh()
}

// appendUser adds the user's question before the request goes out.
func (m *chatModel) appendUser(content string) {
	m.messages = append(m.messages, models.ChatMessage{Role: models.ChatRoleUser, Content: content})
	m.refresh()
}

// appendAssistant adds the tutor's answer after a successful ask.
func (m *chatModel) appendAssistant(content string) {
	m.messages = append(m.messages, models.ChatMessage{Role: models.ChatRoleAssistant, Content: content})
	m.refresh()
}

// history returns the full conversation for the next ask request.
func (m *chatModel) history() []models.ChatMessage {
	out := make([]models.ChatMessage, len(m.messages))
	copy(out, m.messages)
	return out
}

func (m *chatModel) refresh() {
	if !m.ready {
		return
	}
	m.vp.SetContent(m.renderMessages())
	m.vp.GotoBottom()
}

func (m *chatModel) renderMessages() string {
	if len(m.messages) == 0 {
		return subtleStyle.Render("No messages yet. Ask anything about " + m.subject + ".")
	}
	var b strings.Builder
	for _, msg := range m.messages {
		switch msg.Role {
		case models.ChatRoleUser:
			b.WriteString(userMsgStyle.Render("you: "))
		default:
			b.WriteString(assistantMsgStyle.Render("tutor: "))
		}
		b.WriteString(msg.Content)
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m chatModel) update(msg tea.Msg) (chatModel, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+s" {
		m.cycleSubject()
		return m, nil
	}

	if m.loading {
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m chatModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Chat"))
	b.WriteString(subtleStyle.Render("  subject: " + m.subject))
	b.WriteString("\n\n")
	if m.ready {
		b.WriteString(m.vp.View())
		b.WriteString("\n")
	}
	if m.loading {
		b.WriteString(m.spin.View() + subtleStyle.Render(" thinking..."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText) + "\n")
	}
	b.WriteString(helpStyle.Render("enter send · ctrl+s switch subject"))
	b.WriteString("\n")
	return b.String()
}
