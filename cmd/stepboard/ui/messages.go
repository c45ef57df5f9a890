package ui

import "stepboard/internal/leaderboard"

// usersFetchedMsg carries the outcome of one directory fetch. seq ties it to
// the fetch that produced it so a late reply from a superseded fetch is dropped.
type usersFetchedMsg struct {
	seq   int
	users []leaderboard.UserRecord
	err   error
}

// openProfileMsg asks the app to navigate to a user's profile. The app runs
// the session gate before pushing the page.
type openProfileMsg struct {
	user leaderboard.RankedUser
}
