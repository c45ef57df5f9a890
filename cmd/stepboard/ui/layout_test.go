package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutConfig(t *testing.T) {
	l := NewLayoutConfig(0, 0)
	assert.Equal(t, DefaultWidth, l.TerminalWidth)
	assert.Equal(t, DefaultHeight, l.TerminalHeight)
	assert.Equal(t, DefaultWidth-2*ContentPaddingH, l.PageWidth())
	assert.Equal(t, DefaultHeight-TabBarHeight-FooterHeight, l.PageHeight())

	small := NewLayoutConfig(10, 5)
	assert.True(t, small.IsCompact)
	assert.Positive(t, small.PageWidth())
	assert.Positive(t, small.PageHeight())
}
