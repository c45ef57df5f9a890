package ui

import (
	"strings"
	"time"

	"stepboard/internal/clock"
	"stepboard/internal/directory"
	"stepboard/internal/leaderboard"
	"stepboard/internal/logging"
	"stepboard/internal/profile"
	"stepboard/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Tab identifies a top-level screen.
type Tab int

const (
	TabHome Tab = iota
	TabLeaderboard
	TabSettings
)

var tabTitles = []string{"🏠 Home", "🏆 Leaderboard", "👤 Profile"}

func (t Tab) String() string {
	switch t {
	case TabHome:
		return "home"
	case TabLeaderboard:
		return "leaderboard"
	case TabSettings:
		return "profile"
	}
	return "unknown"
}

// ParseTab maps a config name to a tab. Unknown names select Home.
func ParseTab(s string) Tab {
	switch strings.ToLower(s) {
	case "leaderboard":
		return TabLeaderboard
	case "profile", "settings":
		return TabSettings
	}
	return TabHome
}

// Options wires the app's dependencies.
type Options struct {
	Fetcher      directory.Fetcher
	Normalizer   *leaderboard.Normalizer
	Session      *session.Session
	Clock        clock.Clock
	Locale       language.Tag
	Styles       Styles
	FetchTimeout time.Duration
	InitialTab   Tab
}

// App is the root model: a tab bar over three pages plus an optional pushed
// profile page.
type App struct {
	session *session.Session
	clock   clock.Clock
	locale  language.Tag
	styles  Styles
	keys    keyMap
	help    help.Model
	layout  LayoutConfig

	active   Tab
	home     HomePage
	board    LeaderboardPage
	settings SettingsPage
	detail   *ProfilePage
	notice   string

	initCmd  tea.Cmd
	quitting bool
}

// NewApp creates the root model.
func NewApp(o Options) App {
	if o.Session == nil {
		o.Session = session.New(false)
	}
	if o.Clock == nil {
		o.Clock = clock.NewRealClock()
	}

	a := App{
		session:  o.Session,
		clock:    o.Clock,
		locale:   o.Locale,
		styles:   o.Styles,
		keys:     newKeyMap(),
		help:     help.New(),
		layout:   NewLayoutConfig(0, 0),
		active:   o.InitialTab,
		home:     NewHomePage(o.Styles),
		board:    NewLeaderboardPage(o.Fetcher, o.Normalizer, o.FetchTimeout, o.Locale, o.Styles),
		settings: NewSettingsPage(o.Session, o.Styles),
	}
	a.resize()

	if a.active == TabLeaderboard {
		a.board, a.initCmd = a.board.Mount()
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.initCmd
}

// Active returns the selected tab.
func (a App) Active() Tab { return a.active }

// Notice returns the banner currently shown, if any.
func (a App) Notice() string { return a.notice }

// Detail returns the pushed profile page, if any.
func (a App) Detail() (ProfilePage, bool) {
	if a.detail == nil {
		return ProfilePage{}, false
	}
	return *a.detail, true
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.layout = NewLayoutConfig(msg.Width, msg.Height)
		a.help.Width = msg.Width
		a.resize()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case openProfileMsg:
		a.openProfile(msg.user)
		return a, nil

	case usersFetchedMsg, spinner.TickMsg:
		var cmd tea.Cmd
		a.board, cmd = a.board.Update(msg)
		return a, cmd
	}

	// Cursor blinks and the like belong to whichever page is in front.
	var cmd tea.Cmd
	if a.detail != nil {
		d := *a.detail
		d, cmd = d.Update(msg)
		a.detail = &d
	} else if a.active == TabLeaderboard {
		a.board, cmd = a.board.Update(msg)
	}
	return a, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return a, tea.Quit
	}

	if a.detail != nil {
		switch {
		case key.Matches(msg, a.keys.Back):
			a.detail = nil
			return a, nil
		case msg.String() == "q":
			a.quitting = true
			return a, tea.Quit
		}
		d := *a.detail
		d, cmd := d.Update(msg)
		a.detail = &d
		return a, cmd
	}

	if a.notice != "" {
		a.notice = ""
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
			return a, nil
		}
	}

	if a.active == TabLeaderboard && a.board.Searching() {
		var cmd tea.Cmd
		a.board, cmd = a.board.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit
	case key.Matches(msg, a.keys.NextTab):
		return a.switchTab((a.active + 1) % Tab(len(tabTitles)))
	case key.Matches(msg, a.keys.PrevTab):
		return a.switchTab((a.active + Tab(len(tabTitles)) - 1) % Tab(len(tabTitles)))
	case key.Matches(msg, a.keys.Home):
		return a.switchTab(TabHome)
	case key.Matches(msg, a.keys.Board):
		return a.switchTab(TabLeaderboard)
	case key.Matches(msg, a.keys.Settings):
		return a.switchTab(TabSettings)
	}

	var cmd tea.Cmd
	switch a.active {
	case TabLeaderboard:
		a.board, cmd = a.board.Update(msg)
	case TabSettings:
		a.settings, cmd = a.settings.Update(msg)
	}
	return a, cmd
}

func (a App) switchTab(t Tab) (App, tea.Cmd) {
	if t != a.active {
		logging.Get(logging.CategoryUI).Debug("tab switched",
			zap.Stringer("from", a.active), zap.Stringer("to", t))
	}
	a.active = t

	var cmd tea.Cmd
	if t == TabLeaderboard {
		a.board, cmd = a.board.Mount()
	}
	return a, cmd
}

func (a *App) openProfile(u leaderboard.RankedUser) {
	d := a.session.Gate(u)
	if !d.Allowed {
		a.notice = d.Notice
		return
	}

	card := profile.Card{Route: d.Route, Now: a.clock.Now(), Locale: a.locale}
	page := NewProfilePage(card, a.styles.GlamourStyle(), a.styles, a.layout.PageWidth(), a.layout.PageHeight())
	a.detail = &page
	logging.Get(logging.CategoryUI).Debug("profile opened", zap.String("user_id", u.ID), zap.Int("rank", u.Rank))
}

func (a *App) resize() {
	w, h := a.layout.PageWidth(), a.layout.PageHeight()
	a.home.SetSize(w, h)
	a.board.SetSize(w, h)
	a.settings.SetSize(w, h)
	if a.detail != nil {
		a.detail.SetSize(w, h)
	}
}

// View implements tea.Model.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(a.renderTabs())
	sb.WriteString("\n")

	if a.notice != "" {
		banner := a.styles.Error.Render("Access Denied") + "\n" + a.styles.Body.Render(a.notice)
		sb.WriteString(a.styles.Notice.Render(banner))
		sb.WriteString("\n")
	}

	var body string
	switch {
	case a.detail != nil:
		body = a.detail.View()
	case a.active == TabLeaderboard:
		body = a.board.View()
	case a.active == TabSettings:
		body = a.settings.View()
	default:
		body = a.home.View()
	}
	sb.WriteString(a.styles.Content.Render(body))
	sb.WriteString("\n")
	sb.WriteString(a.styles.Footer.Render(a.help.View(a.contextKeys())))

	return sb.String()
}

func (a App) renderTabs() string {
	if a.detail != nil {
		return a.styles.Header.Render("← " + a.detail.card.Route.User.FullName())
	}

	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if Tab(i) == a.active {
			tabs[i] = a.styles.ActiveTab.Render(title)
		} else {
			tabs[i] = a.styles.Tab.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a App) contextKeys() contextKeys {
	k := a.keys
	switch {
	case a.detail != nil:
		return contextKeys{k.Back, k.Up, k.Down, k.Quit}
	case a.active == TabLeaderboard && a.board.Searching():
		return contextKeys{k.Back}
	case a.active == TabLeaderboard && a.board.state == stateFailed:
		return contextKeys{k.Retry, k.NextTab, k.Quit}
	case a.active == TabLeaderboard:
		return contextKeys{k.Up, k.Down, k.Select, k.Search, k.Sort, k.NextTab, k.Quit}
	case a.active == TabSettings:
		return contextKeys{k.Toggle, k.NextTab, k.Quit}
	}
	return contextKeys{k.NextTab, k.Home, k.Board, k.Settings, k.Quit}
}
