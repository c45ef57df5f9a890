package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"stepboard/cmd/stepboard/ui"
	"stepboard/internal/clock"
	"stepboard/internal/config"
	"stepboard/internal/leaderboard"
	"stepboard/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const directoryBody = `{
  "results": [
    {"gender": "female", "name": {"first": "Olivia", "last": "Smith"}, "location": {"country": "Canada"},
     "email": "olivia@example.com", "login": {"uuid": "u1"}, "dob": {"date": "1990-05-15T09:30:00.000Z", "age": 34},
     "registered": {"date": "2024-01-10T00:00:00.000Z"}, "phone": "555-0101", "picture": {"thumbnail": "https://example.com/u1.jpg"}},
    {"gender": "male", "name": {"first": "Bob", "last": "Jones"}, "location": {"country": "Australia"},
     "email": "bob@example.com", "login": {"uuid": "u2"}, "dob": {"date": "1985-11-02T00:00:00.000Z", "age": 39},
     "registered": {"date": "2023-07-01T00:00:00.000Z"}, "phone": "555-0102", "picture": {"thumbnail": "https://example.com/u2.jpg"}},
    {"name": {"first": "Alice", "last": "Brown"}, "location": {"country": "United Kingdom"},
     "email": "alice@example.com", "login": {"uuid": "u3"}, "dob": {"date": "2000-01-30T00:00:00.000Z", "age": 24},
     "phone": "555-0103", "picture": {"thumbnail": "https://example.com/u3.jpg"}}
  ],
  "info": {"seed": "abc", "results": 3}
}`

// setupCLI points a config file at a fake directory and resets the global
// flag state between runs.
func setupCLI(t *testing.T, status int) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(directoryBody))
		}
	}))
	t.Cleanup(srv.Close)

	c := config.DefaultConfig()
	c.Directory.BaseURL = srv.URL + "/api/"
	c.Directory.Timeout = "5s"
	c.Scores.Seed = 7
	c.UI.Theme = "auto"

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, c.Save(path))

	verbose, themeName, loggedIn = false, "", false
	listSort, listSearch, listLimit, listJSON = string(leaderboard.SortByRank), "", 0, false
	configForce = false
	profileWidth = 80
	configPath = path
	t.Cleanup(func() { configPath = "" })

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestListTable(t *testing.T) {
	path := setupCLI(t, http.StatusOK)

	out, err := execute(t, "list", "--config", path)
	require.NoError(t, err)
	for _, want := range []string{"Leaderboard (3 of 3)", "Olivia Smith", "Bob Jones", "Alice Brown", "🥇", "Canada"} {
		assert.Contains(t, out, want)
	}
}

func TestListJSONSortedAndRanked(t *testing.T) {
	path := setupCLI(t, http.StatusOK)

	out, err := execute(t, "list", "--config", path, "--json", "--sort", "name")
	require.NoError(t, err)

	var users []leaderboard.RankedUser
	require.NoError(t, json.Unmarshal([]byte(out), &users))
	require.Len(t, users, 3)
	assert.Equal(t, []string{"Alice", "Bob", "Olivia"}, []string{users[0].FirstName, users[1].FirstName, users[2].FirstName})

	ranks := map[int]bool{}
	for _, u := range users {
		ranks[u.Rank] = true
		assert.GreaterOrEqual(t, u.Score, 0)
		assert.Less(t, u.Score, 20000)
	}
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, ranks)

	// Optional fields are resolved at normalization.
	assert.Equal(t, leaderboard.UnspecifiedGender, users[0].Gender)
	assert.Equal(t, leaderboard.FallbackJoinedDate, users[0].JoinedDate)
}

func TestListSearchAndLimit(t *testing.T) {
	path := setupCLI(t, http.StatusOK)

	out, err := execute(t, "list", "--config", path, "--search", "LIV", "--json")
	require.NoError(t, err)
	var users []leaderboard.RankedUser
	require.NoError(t, json.Unmarshal([]byte(out), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)

	setupCLI(t, http.StatusOK)
	out, err = execute(t, "list", "--config", path, "--limit", "2", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &users))
	assert.Len(t, users, 2)
	assert.Equal(t, 1, users[0].Rank)
}

func TestListNoMatch(t *testing.T) {
	path := setupCLI(t, http.StatusOK)

	out, err := execute(t, "list", "--config", path, "--search", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No users found")
}

func TestListRejectsBadFlags(t *testing.T) {
	path := setupCLI(t, http.StatusOK)

	_, err := execute(t, "list", "--config", path, "--sort", "height")
	assert.ErrorContains(t, err, "unknown sort key")

	setupCLI(t, http.StatusOK)
	_, err = execute(t, "list", "--config", path, "--limit", "-1")
	assert.Error(t, err)
}

func TestListFetchFailure(t *testing.T) {
	path := setupCLI(t, http.StatusServiceUnavailable)

	_, err := execute(t, "list", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load users")
}

func TestProfileDeniedWhenLoggedOut(t *testing.T) {
	path := setupCLI(t, http.StatusOK)

	out, err := execute(t, "profile", "olivia", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, session.DeniedNotice)
	assert.NotContains(t, out, "olivia@example.com")
}

func TestProfileShownWhenLoggedIn(t *testing.T) {
	path := setupCLI(t, http.StatusOK)
	profileClock = clock.NewMockClock(time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC))
	t.Cleanup(func() { profileClock = clock.NewRealClock() })

	out, err := execute(t, "profile", "olivia", "--config", path, "--logged-in")
	require.NoError(t, err)
	for _, want := range []string{"Olivia Smith", "15/05/1990", "Joined 5 months ago", "olivia@example.com"} {
		assert.Contains(t, out, want)
	}
}

func TestProfileNoMatch(t *testing.T) {
	path := setupCLI(t, http.StatusOK)

	_, err := execute(t, "profile", "nobody", "--config", path, "--logged-in")
	assert.ErrorContains(t, err, `no user matches "nobody"`)
}

func TestConfigInit(t *testing.T) {
	setupCLI(t, http.StatusOK)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = execute(t, "config", "init", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "config", "init", "--config", path, "--force")
	assert.NoError(t, err)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Directory, loaded.Directory)
}

func TestConfigShow(t *testing.T) {
	path := setupCLI(t, http.StatusOK)

	out, err := execute(t, "config", "show", "--config", path, "--theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: dark")
	assert.Contains(t, out, "base_url:")
}

func TestInvalidConfigIsRejected(t *testing.T) {
	path := setupCLI(t, http.StatusOK)

	_, err := execute(t, "config", "show", "--config", path, "--theme", "neon")
	assert.ErrorContains(t, err, "invalid config")
}

func TestBuildApp(t *testing.T) {
	path := setupCLI(t, http.StatusOK)
	c, err := config.Load(path)
	require.NoError(t, err)
	c.UI.InitialTab = "leaderboard"
	loggedIn = true

	app, err := buildApp(c)
	require.NoError(t, err)
	assert.Equal(t, ui.TabLeaderboard, app.Active())
	assert.NotNil(t, app.Init())
}
