package main

import (
	"context"
	"fmt"

	"stepboard/cmd/stepboard/ui"
	"stepboard/internal/clock"
	"stepboard/internal/leaderboard"
	"stepboard/internal/profile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var profileWidth int

// profileCmd prints one user's profile, subject to the session gate.
var profileCmd = &cobra.Command{
	Use:   "profile <name>",
	Short: "Show the profile of the best-ranked user matching a name",
	Long: `Fetches one batch of users and shows the profile of the highest-ranked
user whose first or last name contains <name>.

Profiles are only shown to logged-in sessions:
  stepboard profile olivia --logged-in`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

var profileClock clock.Clock = clock.NewRealClock()

func init() {
	profileCmd.Flags().IntVar(&profileWidth, "width", 80, "Wrap width for the rendered profile")
}

func runProfile(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.GetDirectoryTimeout())
	defer cancel()

	board, err := loadBoard(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	matches := leaderboard.Filter(board.Ranked(), args[0])
	if len(matches) == 0 {
		return fmt.Errorf("no user matches %q", args[0])
	}

	out := cmd.OutOrStdout()
	decision := newSession(cfg).Gate(matches[0])
	if !decision.Allowed {
		logger.Info("profile denied", zap.String("user_id", matches[0].ID))
		fmt.Fprintln(out, decision.Notice)
		return nil
	}

	// "auto" lets glamour pick, which also drops styling when piped.
	style := ""
	if cfg.UI.Theme != "auto" {
		style = ui.NewStyles(ui.ThemeFor(cfg.UI.Theme)).GlamourStyle()
	}
	r, err := profile.NewRenderer(style, profileWidth)
	if err != nil {
		logger.Warn("falling back to plain profile", zap.Error(err))
	}

	card := profile.Card{
		Route:  decision.Route,
		Now:    profileClock.Now(),
		Locale: leaderboard.ParseLocale(cfg.UI.Locale),
	}
	fmt.Fprint(out, r.Render(card))
	return nil
}
