package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"stepboard/cmd/stepboard/ui"
	"stepboard/internal/leaderboard"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	listSort   string
	listSearch string
	listLimit  int
	listJSON   bool
)

// listCmd prints the leaderboard without the interactive interface.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the ranked leaderboard",
	Long: `Fetches one batch of users, ranks them by steps and prints the result.

Examples:
  stepboard list --sort name
  stepboard list --search liv --json
  stepboard list --limit 10`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSort, "sort", "s", string(leaderboard.SortByRank), "Sort order: rank, score or name")
	listCmd.Flags().StringVarP(&listSearch, "search", "q", "", "Only show users whose first or last name contains this text")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Show at most this many users (0 = all)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print JSON instead of a table")
}

func runList(cmd *cobra.Command, args []string) error {
	key, err := leaderboard.ParseSortKey(listSort)
	if err != nil {
		return err
	}
	if listLimit < 0 {
		return fmt.Errorf("--limit must not be negative, got %d", listLimit)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.GetDirectoryTimeout())
	defer cancel()

	board, err := loadBoard(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	board.SetSort(key)
	board.SetQuery(listSearch)

	view := board.View()
	if listLimit > 0 && len(view) > listLimit {
		view = view[:listLimit]
	}
	logger.Info("list", zap.String("sort", string(key)), zap.String("search", listSearch), zap.Int("shown", len(view)))

	out := cmd.OutOrStdout()
	if listJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	if len(view) == 0 {
		fmt.Fprintln(out, "No users found 😕")
		return nil
	}

	locale := leaderboard.ParseLocale(cfg.UI.Locale)
	table := ui.NewSimpleTable(fmt.Sprintf("Leaderboard (%d of %d)", len(view), board.Len()),
		[]string{"Rank", "Name", "Country", "Steps"})
	table.RightAlign[3] = true
	for _, u := range view {
		table.AddRow(leaderboard.Medal(u.Rank)+" "+strconv.Itoa(u.Rank), u.FullName(), u.Country, leaderboard.FormatSteps(u.Score, locale))
	}
	fmt.Fprint(out, table.View(ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))))
	return nil
}
