// Package session holds the mock login flag and the navigation gate that
// consults it. One Session is created at the application root and passed to
// every screen that reads or toggles it.
package session

import (
	"sync"

	"stepboard/internal/leaderboard"
	"stepboard/internal/logging"

	"go.uber.org/zap"
)

// DeniedNotice is shown when profile navigation is attempted while logged out.
const DeniedNotice = "You must be logged in to view profiles. Please go to Profile to Login"

// Session is the process-wide "logged in" flag. It starts logged out.
type Session struct {
	mu       sync.RWMutex
	loggedIn bool
}

// New creates a session with the given initial state.
func New(loggedIn bool) *Session {
	return &Session{loggedIn: loggedIn}
}

// IsLoggedIn reports the current flag.
func (s *Session) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// Toggle flips the flag and returns the new value.
func (s *Session) Toggle() bool {
	s.mu.Lock()
	s.loggedIn = !s.loggedIn
	v := s.loggedIn
	s.mu.Unlock()

	logging.Get(logging.CategorySession).Info("session toggled", zap.Bool("logged_in", v))
	return v
}

// SetLoggedIn sets the flag explicitly.
func (s *Session) SetLoggedIn(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = v
}

// Status is the settings-screen label for the flag.
func (s *Session) Status() string {
	if s.IsLoggedIn() {
		return "Logged In"
	}
	return "Logged Out"
}

// Decision is the outcome of a gated navigation.
type Decision struct {
	Allowed bool
	Route   leaderboard.ProfileRoute
	Notice  string
}

// Gate decides whether navigation to the profile of u may proceed. A denied
// navigation is not an error; the caller shows Notice instead.
func (s *Session) Gate(u leaderboard.RankedUser) Decision {
	if !s.IsLoggedIn() {
		logging.Get(logging.CategorySession).Debug("profile navigation denied", zap.String("user_id", u.ID))
		return Decision{Notice: DeniedNotice}
	}
	return Decision{Allowed: true, Route: u.Route()}
}
