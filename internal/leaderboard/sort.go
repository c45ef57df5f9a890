package leaderboard

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the display order.
type SortKey string

const (
	SortByName  SortKey = "name"
	SortByScore SortKey = "score"
	SortByRank  SortKey = "rank"
)

// SortKeys lists the keys in the order the sort toggles are shown.
var SortKeys = []SortKey{SortByRank, SortByScore, SortByName}

// ParseSortKey parses a user-supplied key. "steps" is accepted for score.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortByName, SortByScore, SortByRank:
		return k, nil
	case "steps":
		return SortByScore, nil
	}
	return "", fmt.Errorf("unknown sort key %q (valid: %v)", s, SortKeys)
}

// Label is the capitalized toggle label.
func (k SortKey) Label() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Next cycles rank -> score -> name -> rank.
func (k SortKey) Next() SortKey {
	i := slices.Index(SortKeys, k)
	return SortKeys[(i+1)%len(SortKeys)]
}

// Sort returns a newly ordered copy of users. Names are compared with the
// collation rules of locale. An unrecognized key returns users unchanged.
func Sort(users []RankedUser, key SortKey, locale language.Tag) []RankedUser {
	var less func(a, b RankedUser) int

	switch key {
	case SortByName:
		col := collate.New(locale)
		less = func(a, b RankedUser) int {
			if c := col.CompareString(a.FirstName, b.FirstName); c != 0 {
				return c
			}
			return cmp.Compare(a.Rank, b.Rank)
		}
	case SortByScore:
		less = func(a, b RankedUser) int { return byScore(a.UserRecord, b.UserRecord) }
	case SortByRank:
		less = func(a, b RankedUser) int { return cmp.Compare(a.Rank, b.Rank) }
	default:
		return users
	}

	out := slices.Clone(users)
	slices.SortStableFunc(out, less)
	return out
}
