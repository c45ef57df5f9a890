package leaderboard

import (
	"testing"

	"stepboard/internal/directory"
	"stepboard/internal/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestBoardEndToEnd(t *testing.T) {
	payloads := []directory.Payload{
		payload("u1", "Olivia", "Brown"),
		payload("u2", "Noah", "Smith"),
		payload("u3", "Amelia", "Jones"),
	}
	records := NewNormalizer(random.NewSequence(500, 9000, 100)).Normalize(payloads)

	b := NewBoard(language.English)
	b.Replace(records)

	byID := map[string]int{}
	for _, u := range b.Ranked() {
		byID[u.ID] = u.Rank
	}
	assert.Equal(t, map[string]int{"u2": 1, "u1": 2, "u3": 3}, byID)

	b.SetSort(SortByName)
	assert.Equal(t, []string{"u3", "u2", "u1"}, ids(b.View()))

	b.SetQuery("liv")
	got := b.View()
	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].ID)
	assert.Equal(t, 2, got[0].Rank)
}

func TestBoardCriteriaDoNotRerank(t *testing.T) {
	b := NewBoard(language.English)
	b.Replace(users(3, 2, 1))
	gen := b.Generation()

	b.SetSort(SortByName)
	b.SetQuery("user")
	b.SetSort(SortByRank)
	_ = b.View()

	assert.Equal(t, gen, b.Generation())

	b.Replace(users(1, 2, 3))
	assert.Equal(t, gen+1, b.Generation())
	assert.Equal(t, "id-03", b.Ranked()[0].ID)
}

func TestBoardDefaultsAndReset(t *testing.T) {
	b := NewBoard(language.English)
	assert.Equal(t, SortByScore, b.SortKey())
	assert.Empty(t, b.View())

	b.Replace(users(1))
	assert.Equal(t, 1, b.Len())

	b.Reset()
	assert.Equal(t, 0, b.Len())
}

func TestBoardFind(t *testing.T) {
	b := NewBoard(language.English)
	b.Replace(users(10, 20))

	u, ok := b.Find("id-01")
	require.True(t, ok)
	assert.Equal(t, 2, u.Rank)

	_, ok = b.Find("missing")
	assert.False(t, ok)
}
