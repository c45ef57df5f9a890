package ui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"stepboard/internal/clock"
	"stepboard/internal/directory"
	"stepboard/internal/leaderboard"
	"stepboard/internal/random"
	"stepboard/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var errUnavailable = errors.New("directory unavailable")

type fakeFetcher struct {
	mu       sync.Mutex
	payloads []directory.Payload
	err      error
	calls    int
}

func (f *fakeFetcher) Fetch(ctx context.Context) ([]directory.Payload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, &directory.FetchError{Op: "get", URL: "http://test", Err: f.err}
	}
	return f.payloads, nil
}

func (f *fakeFetcher) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testPayload(id, first, last string) directory.Payload {
	var p directory.Payload
	p.Login.UUID = id
	p.Name.First = first
	p.Name.Last = last
	p.Email = first + "@example.com"
	p.Gender = "female"
	p.Dob.Date = "1990-05-15T09:30:00.000Z"
	p.Dob.Age = 34
	p.Registered.Date = "2024-01-10T00:00:00.000Z"
	p.Picture.Thumbnail = "https://example.com/" + id + ".jpg"
	return p
}

// newFetcher returns three users who score 500, 9000 and 100 in that order,
// so Bob ranks first, Olivia second and Alice third.
func newFetcher() (*fakeFetcher, *leaderboard.Normalizer) {
	f := &fakeFetcher{payloads: []directory.Payload{
		testPayload("u1", "Olivia", "Smith"),
		testPayload("u2", "Bob", "Jones"),
		testPayload("u3", "Alice", "Brown"),
	}}
	return f, leaderboard.NewNormalizer(random.NewSequence(500, 9000, 100))
}

func testStyles() Styles {
	return NewStyles(LightTheme())
}

func newTestPage(f directory.Fetcher, n *leaderboard.Normalizer) LeaderboardPage {
	return NewLeaderboardPage(f, n, time.Second, language.English, testStyles())
}

func newTestApp(f directory.Fetcher, n *leaderboard.Normalizer, s *session.Session, tab Tab) App {
	return NewApp(Options{
		Fetcher:      f,
		Normalizer:   n,
		Session:      s,
		Clock:        clock.NewMockClock(time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)),
		Locale:       language.English,
		Styles:       testStyles(),
		FetchTimeout: time.Second,
		InitialTab:   tab,
	})
}

// runCmd executes cmd and flattens any batch it returns. Only call it on
// commands that return immediately.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func fetched(t *testing.T, cmd tea.Cmd) usersFetchedMsg {
	t.Helper()
	for _, msg := range runCmd(cmd) {
		if m, ok := msg.(usersFetchedMsg); ok {
			return m
		}
	}
	require.FailNow(t, "command did not produce a fetch result")
	return usersFetchedMsg{}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func names(users []leaderboard.RankedUser) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.FirstName
	}
	return out
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	app, ok := m.(App)
	require.True(t, ok)
	return app, cmd
}

// loadedApp returns an app on the Leaderboard tab with users delivered.
func loadedApp(t *testing.T, s *session.Session) (App, *fakeFetcher) {
	t.Helper()
	f, n := newFetcher()
	a := newTestApp(f, n, s, TabHome)
	a, cmd := update(t, a, keyRunes("2"))
	a, _ = update(t, a, fetched(t, cmd))
	return a, f
}
