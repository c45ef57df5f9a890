package ui

import (
	"strings"

	"stepboard/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loggedInMessage  = "You are logged in. You can view user profiles from the leaderboard."
	loggedOutMessage = "You are currently logged out. Log in to view detailed user profiles."
)

// SettingsPage is the Profile tab: it shows and toggles the mock session.
type SettingsPage struct {
	session *session.Session
	styles  Styles
	keys    keyMap
	width   int
	height  int
}

// NewSettingsPage creates the Profile tab over the shared session.
func NewSettingsPage(s *session.Session, styles Styles) SettingsPage {
	return SettingsPage{
		session: s,
		styles:  styles,
		keys:    newKeyMap(),
	}
}

// SetSize updates the page dimensions.
func (m *SettingsPage) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Update handles the login/logout toggle.
func (m SettingsPage) Update(msg tea.Msg) (SettingsPage, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Toggle) {
		m.session.Toggle()
	}
	return m, nil
}

// View renders the page.
func (m SettingsPage) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("🔐 Authentication"))
	sb.WriteString("\n")

	status := m.styles.Error.Render(m.session.Status())
	message := loggedOutMessage
	button := "Login"
	if m.session.IsLoggedIn() {
		status = m.styles.Success.Render(m.session.Status())
		message = loggedInMessage
		button = "Logout"
	}

	sb.WriteString(m.styles.Bold.Render("Status: ") + status)
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Body.Render(message))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Button.Render(button))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render("press enter to " + strings.ToLower(button)))

	return sb.String()
}
