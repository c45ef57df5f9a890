package config

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme is "light", "dark" or "auto" (detect from the terminal).
	Theme string `yaml:"theme" env:"THEME" validate:"oneof=light dark auto"`

	// Locale drives name collation and number formatting (BCP 47 tag).
	Locale string `yaml:"locale" env:"LOCALE" validate:"required"`

	// InitialTab is the tab shown on startup.
	InitialTab string `yaml:"initial_tab" env:"INITIAL_TAB" validate:"oneof=home leaderboard profile"`

	// StartLoggedIn seeds the mock session flag.
	StartLoggedIn bool `yaml:"start_logged_in" env:"START_LOGGED_IN"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:         "auto",
		Locale:        "en",
		InitialTab:    "home",
		StartLoggedIn: false,
	}
}
