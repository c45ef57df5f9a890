package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMedal(t *testing.T) {
	assert.Equal(t, "🥇", Medal(1))
	assert.Equal(t, "🥈", Medal(2))
	assert.Equal(t, "🥉", Medal(3))
	assert.Equal(t, "#4", Medal(4))
	assert.Equal(t, "#100", Medal(100))
}

func TestFormatSteps(t *testing.T) {
	assert.Equal(t, "12,345", FormatSteps(12345, language.English))
	assert.Equal(t, "0", FormatSteps(0, language.English))
	assert.Equal(t, "999", FormatSteps(999, language.English))
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, language.French, ParseLocale("fr"))
	assert.Equal(t, language.English, ParseLocale("!!"))
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Ava Stone", UserRecord{FirstName: "Ava", LastName: "Stone"}.FullName())
	assert.Equal(t, "Ava", UserRecord{FirstName: "Ava"}.FullName())
}
