package profile

import (
	"fmt"
	"strings"
	"time"

	"stepboard/internal/leaderboard"

	"github.com/charmbracelet/glamour"
	"golang.org/x/text/language"
)

// Card is the data shown on the profile detail screen.
type Card struct {
	Route  leaderboard.ProfileRoute
	Now    time.Time
	Locale language.Tag
}

// Markdown builds the profile as a Markdown document.
func (c Card) Markdown() string {
	u := c.Route.User

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", u.FullName())
	fmt.Fprintf(&sb, "%s, %s\n\n", FormatDate(u.DateOfBirth), u.Gender)
	fmt.Fprintf(&sb, "*Joined %s*\n\n", MonthsSince(c.Now, u.JoinedDate))

	sb.WriteString("| Total Steps | Current Rank |\n")
	sb.WriteString("|---|---|\n")
	fmt.Fprintf(&sb, "| %s | %s |\n\n",
		leaderboard.FormatSteps(u.Score, c.Locale),
		rankLabel(c.Route.Rank))

	sb.WriteString("## Contact\n\n")
	writeField(&sb, "Email", u.Email)
	writeField(&sb, "Phone", u.Phone)
	writeField(&sb, "Country", u.Country)
	if u.Age > 0 {
		writeField(&sb, "Age", fmt.Sprint(u.Age))
	}
	writeField(&sb, "Avatar", u.AvatarURL)

	return sb.String()
}

func rankLabel(rank int) string {
	m := leaderboard.Medal(rank)
	if strings.HasPrefix(m, "#") {
		return fmt.Sprint(rank)
	}
	return fmt.Sprintf("%s %d", m, rank)
}

func writeField(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(sb, "- **%s:** %s\n", label, value)
}

// Renderer turns profile cards into terminal output.
type Renderer struct {
	term *glamour.TermRenderer
}

// NewRenderer creates a glamour renderer. style is a glamour style name
// ("light", "dark", "notty"); an empty style auto-detects.
func NewRenderer(style string, width int) (*Renderer, error) {
	if width <= 0 {
		width = 80
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(style))
	}

	term, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile renderer: %w", err)
	}
	return &Renderer{term: term}, nil
}

// Render renders c, falling back to the raw Markdown if glamour fails.
func (r *Renderer) Render(c Card) string {
	md := c.Markdown()
	if r == nil || r.term == nil {
		return md
	}
	out, err := r.term.Render(md)
	if err != nil {
		return md
	}
	return out
}
