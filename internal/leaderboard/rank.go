package leaderboard

import (
	"cmp"
	"slices"
)

// byScore orders highest score first; equal scores fall back to id so the
// order is total and deterministic.
func byScore(a, b UserRecord) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// Rank assigns 1-based ranks by descending score. The returned slice is in
// rank order; the input is not modified. Ranks form the permutation 1..N.
func Rank(users []UserRecord) []RankedUser {
	sorted := slices.Clone(users)
	slices.SortStableFunc(sorted, byScore)

	out := make([]RankedUser, len(sorted))
	for i, u := range sorted {
		rank := i + 1
		out[i] = RankedUser{
			UserRecord:  u,
			Rank:        rank,
			RankHistory: History(rank),
		}
	}
	return out
}

// History is the synthetic four-step trend ending at rank.
func History(rank int) [4]int {
	return [4]int{max(1, rank+2), max(1, rank+1), max(1, rank), rank}
}
