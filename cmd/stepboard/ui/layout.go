package ui

// Layout constants for the fixed chrome around each page.
const (
	TabBarHeight    = 2
	FooterHeight    = 2
	NoticeHeight    = 4
	ContentPaddingH = 2

	// Leaderboard chrome: search box, sort toggles, counts line.
	SearchBoxHeight  = 3
	SortToggleHeight = 3
	CountLineHeight  = 2

	MinimumTerminalWidth  = 40
	MinimumTerminalHeight = 12

	// Defaults used before the first WindowSizeMsg arrives.
	DefaultWidth  = 80
	DefaultHeight = 24
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size
func NewLayoutConfig(width, height int) LayoutConfig {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		IsCompact:      width < 60,
	}
}

// PageWidth is the width available to a page body.
func (l LayoutConfig) PageWidth() int {
	return max(l.TerminalWidth-2*ContentPaddingH, MinimumTerminalWidth-2*ContentPaddingH)
}

// PageHeight is the height left after the tab bar and footer.
func (l LayoutConfig) PageHeight() int {
	return max(l.TerminalHeight-TabBarHeight-FooterHeight, MinimumTerminalHeight-TabBarHeight-FooterHeight)
}
