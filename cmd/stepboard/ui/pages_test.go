package ui

import (
	"testing"
	"time"

	"stepboard/internal/leaderboard"
	"stepboard/internal/profile"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestHomePageView(t *testing.T) {
	page := NewHomePage(testStyles())
	assert.Contains(t, page.View(), "Welcome! 👋")

	page.SetSize(60, 10)
	assert.Contains(t, page.View(), "Welcome! 👋")
}

func TestProfilePageRendersCard(t *testing.T) {
	card := profile.Card{
		Route: leaderboard.ProfileRoute{
			User: leaderboard.UserRecord{
				ID:          "u1",
				FirstName:   "Olivia",
				LastName:    "Smith",
				Score:       12345,
				Email:       "olivia@example.com",
				DateOfBirth: "1990-05-15T09:30:00.000Z",
				Gender:      "female",
				JoinedDate:  "2024-01-10",
			},
			Rank: 1,
		},
		Now:    time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		Locale: language.English,
	}

	page := NewProfilePage(card, "notty", testStyles(), 70, 30)
	view := page.View()
	for _, want := range []string{"User Profile", "Olivia Smith", "15/05/1990", "Joined 5 months ago", "12,345", "🥇"} {
		assert.Contains(t, view, want)
	}
	assert.Equal(t, "u1", page.Route().User.ID)

	// Scrolling keys are accepted without leaving the page.
	page, _ = page.Update(tea.KeyMsg{Type: tea.KeyDown})
	page.SetSize(50, 20)
	assert.Contains(t, page.View(), "User Profile")
	assert.Equal(t, 50, page.viewport.Width)
}
