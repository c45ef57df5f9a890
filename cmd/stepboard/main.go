package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stepboard/internal/config"
	"stepboard/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string
	themeName  string
	loggedIn   bool

	// Resolved per invocation in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "stepboard",
	Short: "stepboard - step-count leaderboard for your terminal",
	Long: `stepboard fetches a batch of users from a public random-user directory,
gives each a step count, and ranks them on a searchable leaderboard.

Run without arguments to start the interactive interface. Open a profile from
the leaderboard after logging in on the Profile tab.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Close()
	},
	RunE: runInteractive,
}

func setup(cmd *cobra.Command) error {
	path := resolvedConfigPath()

	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if themeName != "" {
		c.UI.Theme = themeName
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	if err := logging.Initialize(cfg.Logging, verbose); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = logging.Get(logging.CategoryCLI)
	logger.Debug("command starting", zap.String("command", cmd.CommandPath()), zap.String("config", path))
	return nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: .stepboard/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme: light, dark or auto")
	rootCmd.PersistentFlags().BoolVar(&loggedIn, "logged-in", false, "Start with the mock session logged in")

	// Add commands to root
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
