package leaderboard

import "strings"

// Filter keeps the users whose first or last name contains query, ignoring
// case. An empty query returns users as-is; no match returns an empty,
// non-nil slice.
func Filter(users []RankedUser, query string) []RankedUser {
	if query == "" {
		return users
	}

	q := strings.ToLower(query)
	out := make([]RankedUser, 0)
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.FirstName), q) ||
			strings.Contains(strings.ToLower(u.LastName), q) {
			out = append(out, u)
		}
	}
	return out
}
