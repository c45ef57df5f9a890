package leaderboard

import (
	"slices"

	"golang.org/x/text/language"
)

// Board holds one screen mount's collection plus the viewer's criteria.
// Ranking happens only in Replace; changing the sort key or query only
// reorders or subsets the ranked set.
type Board struct {
	ranked     []RankedUser
	sortKey    SortKey
	query      string
	locale     language.Tag
	generation int
}

// NewBoard creates an empty board sorted by score, matching the initial
// toggle of the leaderboard screen.
func NewBoard(locale language.Tag) *Board {
	return &Board{
		sortKey: SortByScore,
		locale:  locale,
	}
}

// Replace swaps in a new user set and re-ranks it.
func (b *Board) Replace(users []UserRecord) {
	b.ranked = Rank(users)
	b.generation++
}

// Reset drops the user set, as when a retry starts a fresh fetch.
func (b *Board) Reset() {
	b.ranked = nil
	b.generation++
}

// SetSort changes the display order.
func (b *Board) SetSort(k SortKey) { b.sortKey = k }

// SetQuery changes the search string.
func (b *Board) SetQuery(q string) { b.query = q }

func (b *Board) SortKey() SortKey { return b.sortKey }
func (b *Board) Query() string    { return b.query }
func (b *Board) Len() int         { return len(b.ranked) }

// Generation counts how many times the set was re-ranked.
func (b *Board) Generation() int { return b.generation }

// Ranked returns the full collection in rank order.
func (b *Board) Ranked() []RankedUser { return slices.Clone(b.ranked) }

// View returns the sorted, filtered sequence for display.
func (b *Board) View() []RankedUser {
	return Filter(Sort(b.ranked, b.sortKey, b.locale), b.query)
}

// Find returns the ranked user with the given id.
func (b *Board) Find(id string) (RankedUser, bool) {
	i := slices.IndexFunc(b.ranked, func(u RankedUser) bool { return u.ID == id })
	if i < 0 {
		return RankedUser{}, false
	}
	return b.ranked[i], true
}
