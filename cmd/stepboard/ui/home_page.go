package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HomePage is the static welcome tab.
type HomePage struct {
	styles Styles
	width  int
	height int
}

// NewHomePage creates the welcome tab.
func NewHomePage(styles Styles) HomePage {
	return HomePage{styles: styles}
}

// SetSize updates the page dimensions.
func (m *HomePage) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// View renders the page.
func (m HomePage) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Welcome! 👋"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Body.Render("See who is walking the most this month."))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render("Press 2 for the leaderboard, 3 to log in."))

	if m.width <= 0 || m.height <= 0 {
		return sb.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}
