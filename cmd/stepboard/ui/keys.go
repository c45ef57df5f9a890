package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the app-level bindings shown in the help footer.
type keyMap struct {
	Quit     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Home     key.Binding
	Board    key.Binding
	Settings key.Binding
	Back     key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Search   key.Binding
	Sort     key.Binding
	Retry    key.Binding
	Toggle   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Home:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Board:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "leaderboard")),
		Settings: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "profile")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Retry:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Toggle:   key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "login/logout")),
	}
}

// contextKeys is the help.KeyMap for whatever the app is currently showing.
type contextKeys []key.Binding

func (c contextKeys) ShortHelp() []key.Binding  { return c }
func (c contextKeys) FullHelp() [][]key.Binding { return [][]key.Binding{c} }
