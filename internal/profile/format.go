// Package profile formats the detail screen of a single user.
package profile

import (
	"fmt"
	"time"

	"stepboard/internal/leaderboard"
)

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// parse reads an ISO-8601 timestamp or date. The returned time keeps the
// offset written in the string so its calendar components are used as-is.
func parse(iso string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders an ISO timestamp as DD/MM/YYYY from its own calendar
// components, without converting time zones. Unparseable input is returned
// unchanged.
func FormatDate(iso string) string {
	t, ok := parse(iso)
	if !ok {
		return iso
	}
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}

// MonthsBetween is yearDiff*12 + monthDiff. Day of month is ignored, so a
// date late in the previous month already counts as one month ago.
func MonthsBetween(now time.Time, iso string) int {
	t, ok := parse(iso)
	if !ok {
		t, _ = parse(leaderboard.FallbackJoinedDate)
	}
	return (now.Year()-t.Year())*12 + int(now.Month()) - int(t.Month())
}

// MonthsSince renders MonthsBetween as "this month", "1 month ago" or
// "N months ago". Known inaccuracy: up to 29 days early near month
// boundaries, kept for parity with the leaderboard's existing output.
func MonthsSince(now time.Time, iso string) string {
	switch n := MonthsBetween(now, iso); {
	case n <= 0:
		return "this month"
	case n == 1:
		return "1 month ago"
	default:
		return fmt.Sprintf("%d months ago", n)
	}
}
