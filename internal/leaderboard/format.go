package leaderboard

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Medal returns the podium icon for ranks 1-3 and "#N" otherwise.
func Medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return "#" + strconv.Itoa(rank)
}

// FormatSteps renders a score with the locale's digit grouping.
func FormatSteps(n int, locale language.Tag) string {
	return message.NewPrinter(locale).Sprintf("%d", n)
}

// ParseLocale resolves a BCP 47 tag, falling back to English.
func ParseLocale(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return tag
}
