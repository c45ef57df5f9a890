package main

import (
	"fmt"

	"stepboard/cmd/stepboard/ui"
	"stepboard/internal/clock"
	"stepboard/internal/config"
	"stepboard/internal/leaderboard"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// buildApp wires the interactive model from config.
func buildApp(c *config.Config) (ui.App, error) {
	norm, err := newNormalizer(c)
	if err != nil {
		return ui.App{}, err
	}

	return ui.NewApp(ui.Options{
		Fetcher:      newClient(c),
		Normalizer:   norm,
		Session:      newSession(c),
		Clock:        clock.NewRealClock(),
		Locale:       leaderboard.ParseLocale(c.UI.Locale),
		Styles:       ui.NewStyles(ui.ThemeFor(c.UI.Theme)),
		FetchTimeout: c.GetDirectoryTimeout(),
		InitialTab:   ui.ParseTab(c.UI.InitialTab),
	}), nil
}

// runInteractive launches the terminal interface.
func runInteractive(cmd *cobra.Command, args []string) error {
	app, err := buildApp(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interface exited with error: %w", err)
	}
	return nil
}
