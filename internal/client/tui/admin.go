package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/edenai/tutorchat/internal/models"
)

// adminTab is one pane of the admin dashboard.
type adminTab string

const (
	tabSystem    adminTab = "system"
	tabKnowledge adminTab = "knowledge"
	tabUsers     adminTab = "users"
)

var adminTabOrder = []adminTab{tabSystem, tabKnowledge, tabUsers}

// adminModel renders the admin dashboard. All data comes from admin-only
// endpoints; the backend is the authority on privilege, this screen is
// merely hidden from non-admins by the view gate.
type adminModel struct {
	tab adminTab

	status *models.SystemStatus

	users      []models.AdminUser
	usersTable table.Model

	docs      []models.KnowledgeDoc
	docsTable table.Model

	uploadInput   textinput.Model
	uploadFocused bool

	loading  bool
	errText  string
	infoText string
}

func newAdminModel() adminModel {
	usersTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Email", Width: 30},
			{Title: "Name", Width: 20},
			{Title: "Role", Width: 8},
			{Title: "Active", Width: 8},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	docsTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Name", Width: 35},
			{Title: "Size", Width: 10},
			{Title: "Uploaded", Width: 20},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	upload := textinput.New()
	upload.Placeholder = "path of .txt/.md file to upload"
	upload.CharLimit = 512

	return adminModel{
		tab:         tabSystem,
		usersTable:  usersTable,
		docsTable:   docsTable,
		uploadInput: upload,
	}
}

func (m *adminModel) nextTab() {
	for i, t := range adminTabOrder {
		if t == m.tab {
			m.tab = adminTabOrder[(i+1)%len(adminTabOrder)]
			break
		}
	}
	m.errText = ""
	m.infoText = ""
}

func (m *adminModel) setUsers(users []models.AdminUser) {
	m.users = users
	rows := make([]table.Row, len(users))
	for i, u := range users {
		rows[i] = table.Row{
			strconv.FormatInt(u.ID, 10),
			u.Email,
			u.FullName,
			string(u.Role),
			strconv.FormatBool(u.IsActive),
		}
	}
	m.usersTable.SetRows(rows)
}

func (m *adminModel) setDocs(docs []models.KnowledgeDoc) {
	m.docs = docs
	rows := make([]table.Row, len(docs))
	for i, d := range docs {
		rows[i] = table.Row{
			strconv.FormatInt(d.ID, 10),
			d.OriginalName,
			fmt.Sprintf("%d B", d.Size),
			d.CreatedAt,
		}
	}
	m.docsTable.SetRows(rows)
}

// selectedUser returns the highlighted user row, or nil.
func (m *adminModel) selectedUser() *models.AdminUser {
	i := m.usersTable.Cursor()
	if i < 0 || i >= len(m.users) {
		return nil
	}
	return &m.users[i]
}

// selectedDoc returns the highlighted document row, or nil.
func (m *adminModel) selectedDoc() *models.KnowledgeDoc {
	i := m.docsTable.Cursor()
	if i < 0 || i >= len(m.docs) {
		return nil
	}
	return &m.docs[i]
}

func (m adminModel) update(msg tea.Msg) (adminModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.uploadFocused {
		m.uploadInput, cmd = m.uploadInput.Update(msg)
		return m, cmd
	}
	switch m.tab {
	case tabUsers:
		m.usersTable, cmd = m.usersTable.Update(msg)
	case tabKnowledge:
		m.docsTable, cmd = m.docsTable.Update(msg)
	}
	return m, cmd
}

func (m adminModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Admin"))
	b.WriteString("\n\n")

	labels := make([]string, len(adminTabOrder))
	active := 0
	for i, t := range adminTabOrder {
		labels[i] = string(t)
		if t == m.tab {
			active = i
		}
	}
	b.WriteString(renderTabs(labels, active))
	b.WriteString("\n\n")

	switch m.tab {
	case tabSystem:
		b.WriteString(m.viewSystem())
	case tabUsers:
		b.WriteString(m.usersTable.View())
		b.WriteString("\n" + helpStyle.Render("a toggle role · x toggle active · r refresh · tab next pane"))
	case tabKnowledge:
		b.WriteString(m.docsTable.View())
		b.WriteString("\n")
		if m.uploadFocused {
			b.WriteString(m.uploadInput.View())
			b.WriteString("\n" + helpStyle.Render("enter upload · esc cancel"))
		} else {
			b.WriteString(helpStyle.Render("u upload · d delete · r rebuild index · tab next pane"))
		}
	}

	if m.loading {
		b.WriteString("\n" + subtleStyle.Render("loading..."))
	}
	if m.infoText != "" {
		b.WriteString("\n" + infoStyle.Render(m.infoText))
	}
	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText))
	}
	return b.String()
}

func (m adminModel) viewSystem() string {
	if m.status == nil {
		return subtleStyle.Render("no status loaded · r refresh")
	}
	var b strings.Builder
	if m.status.OK {
		b.WriteString(infoStyle.Render("system ok"))
	} else {
		b.WriteString(errorStyle.Render("system degraded"))
	}
	b.WriteString("\n\n")
	for name, state := range m.status.Services {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", name, state))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  users          %d\n", m.status.Stats.Users))
	b.WriteString(fmt.Sprintf("  knowledge docs %d\n", m.status.Stats.KnowledgeDocs))
	b.WriteString("\n" + helpStyle.Render("r refresh · tab next pane"))
	return b.String()
}
