package ui

import (
	"stepboard/internal/leaderboard"
	"stepboard/internal/logging"
	"stepboard/internal/profile"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// ProfilePage is the pushed detail destination. It only ever receives the
// navigation payload, never the leaderboard itself.
type ProfilePage struct {
	card       profile.Card
	glamour    string
	renderer   *profile.Renderer
	viewport   viewport.Model
	styles     Styles
	width      int
	height     int
	renderedAt int
}

// NewProfilePage creates the detail page for card, rendered with the named
// glamour style.
func NewProfilePage(card profile.Card, glamourStyle string, styles Styles, w, h int) ProfilePage {
	m := ProfilePage{
		card:     card,
		glamour:  glamourStyle,
		styles:   styles,
		viewport: viewport.New(w, h),
	}
	m.SetSize(w, h)
	return m
}

// Route returns the payload the page was opened with.
func (m ProfilePage) Route() leaderboard.ProfileRoute {
	return m.card.Route
}

// SetSize updates the page dimensions. The card is re-rendered when the
// wrap width changes.
func (m *ProfilePage) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = max(h-2, 1)

	if m.renderer == nil || m.renderedAt != w {
		r, err := profile.NewRenderer(m.glamour, w)
		if err != nil {
			logging.Get(logging.CategoryUI).Warn("profile renderer unavailable", zap.Error(err))
		}
		m.renderer = r
		m.renderedAt = w
		m.viewport.SetContent(m.renderer.Render(m.card))
	}
}

// Update scrolls the card.
func (m ProfilePage) Update(msg tea.Msg) (ProfilePage, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m ProfilePage) View() string {
	return m.styles.Title.Render("User Profile") + "\n" + m.viewport.View()
}
