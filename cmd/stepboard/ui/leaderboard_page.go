package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stepboard/internal/directory"
	"stepboard/internal/leaderboard"
	"stepboard/internal/logging"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	loadingText  = "Loading users..."
	failureText  = "Failed to load users. Please try again."
	noResultText = "No users found 😕"
)

type loadState int

const (
	stateIdle loadState = iota
	stateLoading
	stateReady
	stateFailed
)

// LeaderboardPage shows the ranked users with search and sort controls.
// Its data is fetched once when the tab is first shown and again on Retry.
type LeaderboardPage struct {
	fetcher    directory.Fetcher
	normalizer *leaderboard.Normalizer
	timeout    time.Duration
	locale     language.Tag

	board   *leaderboard.Board
	state   loadState
	err     error
	seq     int
	search  textinput.Model
	spinner spinner.Model
	keys    keyMap
	styles  Styles

	cursor int
	offset int
	width  int
	height int
}

// NewLeaderboardPage creates the page. Nothing is fetched until Mount.
func NewLeaderboardPage(f directory.Fetcher, n *leaderboard.Normalizer, timeout time.Duration, locale language.Tag, styles Styles) LeaderboardPage {
	ti := textinput.New()
	ti.Placeholder = "Search users..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return LeaderboardPage{
		fetcher:    f,
		normalizer: n,
		timeout:    timeout,
		locale:     locale,
		board:      leaderboard.NewBoard(locale),
		search:     ti,
		spinner:    sp,
		keys:       newKeyMap(),
		styles:     styles,
		width:      DefaultWidth,
		height:     DefaultHeight,
	}
}

// SetSize updates the page dimensions.
func (m *LeaderboardPage) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.search.Width = max(w-8, 10)
	m.clampCursor()
}

// Mount starts the initial fetch the first time the page is shown.
func (m LeaderboardPage) Mount() (LeaderboardPage, tea.Cmd) {
	if m.state != stateIdle {
		return m, nil
	}
	return m.startFetch()
}

// Searching reports whether the search box has keyboard focus.
func (m LeaderboardPage) Searching() bool {
	return m.search.Focused()
}

// Loading reports whether a fetch is pending.
func (m LeaderboardPage) Loading() bool {
	return m.state == stateLoading
}

// Visible returns the users currently displayed, in display order.
func (m LeaderboardPage) Visible() []leaderboard.RankedUser {
	if m.state != stateReady {
		return nil
	}
	return m.board.View()
}

func (m LeaderboardPage) startFetch() (LeaderboardPage, tea.Cmd) {
	m.seq++
	m.state = stateLoading
	m.err = nil
	m.board.Reset()
	m.cursor = 0
	m.offset = 0

	logging.Get(logging.CategoryLeaderboard).Debug("fetch issued", zap.Int("seq", m.seq))
	return m, tea.Batch(m.spinner.Tick, fetchUsers(m.seq, m.fetcher, m.normalizer, m.timeout))
}

// fetchUsers runs the directory request off the UI goroutine and normalizes
// the payloads before handing them back.
func fetchUsers(seq int, f directory.Fetcher, n *leaderboard.Normalizer, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		payloads, err := f.Fetch(ctx)
		if err != nil {
			return usersFetchedMsg{seq: seq, err: err}
		}
		return usersFetchedMsg{seq: seq, users: n.Normalize(payloads)}
	}
}

// Update handles messages for the page.
func (m LeaderboardPage) Update(msg tea.Msg) (LeaderboardPage, tea.Cmd) {
	switch msg := msg.(type) {
	case usersFetchedMsg:
		return m.handleFetched(msg), nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m LeaderboardPage) handleFetched(msg usersFetchedMsg) LeaderboardPage {
	log := logging.Get(logging.CategoryLeaderboard)
	if msg.seq != m.seq {
		log.Debug("dropping stale fetch result", zap.Int("seq", msg.seq), zap.Int("current", m.seq))
		return m
	}

	if msg.err != nil {
		log.Warn("fetch failed", zap.Error(msg.err))
		m.state = stateFailed
		m.err = msg.err
		return m
	}

	m.board.Replace(msg.users)
	m.state = stateReady
	m.cursor = 0
	m.offset = 0
	log.Info("leaderboard loaded", zap.Int("users", m.board.Len()))
	return m
}

func (m LeaderboardPage) handleKey(msg tea.KeyMsg) (LeaderboardPage, tea.Cmd) {
	switch m.state {
	case stateFailed:
		if key.Matches(msg, m.keys.Retry, m.keys.Select) {
			return m.startFetch()
		}
		return m, nil
	case stateReady:
	default:
		// Nothing to interact with until the data arrives.
		return m, nil
	}

	if m.search.Focused() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.board.SetQuery(m.search.Value())
		m.cursor = 0
		m.offset = 0
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Sort):
		m.setSort(m.board.SortKey().Next())
	case msg.String() == "ctrl+r":
		m.setSort(leaderboard.SortByRank)
	case msg.String() == "ctrl+s":
		m.setSort(leaderboard.SortByScore)
	case msg.String() == "ctrl+n":
		m.setSort(leaderboard.SortByName)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case msg.String() == "pgup":
		m.moveCursor(-m.listHeight())
	case msg.String() == "pgdown":
		m.moveCursor(m.listHeight())
	case msg.String() == "home", msg.String() == "g":
		m.moveCursor(-len(m.board.View()))
	case msg.String() == "end", msg.String() == "G":
		m.moveCursor(len(m.board.View()))
	case key.Matches(msg, m.keys.Select):
		view := m.board.View()
		if m.cursor < len(view) {
			u := view[m.cursor]
			return m, func() tea.Msg { return openProfileMsg{user: u} }
		}
	}
	return m, nil
}

func (m *LeaderboardPage) setSort(k leaderboard.SortKey) {
	m.board.SetSort(k)
	m.cursor = 0
	m.offset = 0
}

func (m *LeaderboardPage) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *LeaderboardPage) clampCursor() {
	n := 0
	if m.state == stateReady {
		n = len(m.board.View())
	}
	m.cursor = min(max(m.cursor, 0), max(n-1, 0))

	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m LeaderboardPage) listHeight() int {
	return max(m.height-SearchBoxHeight-SortToggleHeight-CountLineHeight, 3)
}

// View renders the page.
func (m LeaderboardPage) View() string {
	switch m.state {
	case stateLoading, stateIdle:
		return fmt.Sprintf("\n %s %s\n", m.spinner.View(), m.styles.Muted.Render(loadingText))
	case stateFailed:
		var sb strings.Builder
		sb.WriteString("\n")
		sb.WriteString(m.styles.Error.Render(failureText))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Button.Render("Retry"))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Muted.Render("press r to retry"))
		return sb.String()
	}

	var sb strings.Builder
	sb.WriteString(m.styles.SearchBox.Width(max(m.width-2, 10)).Render(m.search.View()))
	sb.WriteString("\n")
	sb.WriteString(m.renderToggles())
	sb.WriteString("\n")

	view := m.board.View()
	if len(view) == 0 {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render(noResultText))
		return sb.String()
	}

	end := min(m.offset+m.listHeight(), len(view))
	for i := m.offset; i < end; i++ {
		sb.WriteString(m.renderRow(view[i], i == m.cursor))
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d of %d users", len(view), m.board.Len())))

	return sb.String()
}

func (m LeaderboardPage) renderToggles() string {
	toggles := make([]string, 0, len(leaderboard.SortKeys))
	for _, k := range leaderboard.SortKeys {
		style := m.styles.Toggle
		if k == m.board.SortKey() {
			style = m.styles.ActiveToggle
		}
		toggles = append(toggles, style.Render(k.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, toggles...)
}

func (m LeaderboardPage) renderRow(u leaderboard.RankedUser, selected bool) string {
	steps := leaderboard.FormatSteps(u.Score, m.locale) + " steps"
	rank := m.styles.Rank.Render(leaderboard.Medal(u.Rank))

	nameWidth := max(m.width-lipgloss.Width(rank)-lipgloss.Width(steps)-4, 8)
	name := lipgloss.NewStyle().Width(nameWidth).MaxWidth(nameWidth).Render(u.FullName())

	line := lipgloss.JoinHorizontal(lipgloss.Top, rank, " ", name, " ", m.styles.Steps.Render(steps))
	if selected {
		return m.styles.SelectedRow.Render(line)
	}
	return m.styles.Row.Render(line)
}
