// slide is a sliding-block puzzle for the terminal.
//
// Usage:
//
//	slide list               - List available campaigns
//	slide levels <game>      - Show the levels of a campaign
//	slide play [game]        - Play a campaign (menu when no game is given)
//	slide best <game>        - Show best moves for a campaign
//	slide serve              - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>         - Set database path (default: ~/.slide/slide.db)
//	--config <path>     - Load configuration from a YAML file
//	--log-level <lvl>   - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide/internal/config"
	"github.com/vovakirdan/slide/internal/games/slide"
	"github.com/vovakirdan/slide/internal/games/slide/levels"
	"github.com/vovakirdan/slide/internal/platform/tui"
	"github.com/vovakirdan/slide/internal/registry"
)

var (
	// Global flags
	flagDBPath     string
	flagConfigPath string
	flagLogLevel   string

	// Set up by the root command before any subcommand runs
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide",
	Short: "Slide - a sliding-block puzzle in your terminal",
	Long: `Slide is a terminal puzzle: pieces slide until they hit a wall, an
edge or another piece. Bring every colored piece onto its target.

Available commands:
  list     - Show all available campaigns
  levels   - Show the levels of a campaign
  play     - Play a campaign
  best     - View best moves
  serve    - Start SSH server for remote play

Examples:
  slide list
  slide play
  slide play slide --level 3
  slide play --levels ./my-levels.yaml
  slide serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to best moves database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the configuration, builds the logger and registers the
// campaigns found in the configured levels directory.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}
	cfg.ApplyFlags(config.Overrides{DBPath: flagDBPath, LogLevel: flagLogLevel})

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "slide",
		Level:           level,
	})

	registerCampaigns(cfg.Levels.Dir)
	return nil
}

// registerCampaigns adds every campaign file under dir to the registry.
// Broken files and ID clashes are logged and skipped.
func registerCampaigns(dir string) {
	if dir == "" {
		return
	}

	campaigns, err := levels.NewLoader(dir).LoadAll()
	if err != nil {
		logger.Warn("some campaign files were skipped", "dir", dir, "error", err)
	}

	for _, c := range campaigns {
		id := slide.CampaignGameID(c.ID())
		if err := registry.TryRegister(id, func() registry.Game { return slide.FromCampaign(c) }); err != nil {
			logger.Warn("campaign not registered", "file", c.Path(), "error", err)
			continue
		}
		logger.Debug("registered campaign", "game", id, "levels", c.Count())
	}
}

// theme builds the board theme from the configuration.
func theme() *tui.Theme {
	t := tui.NewTheme(appConfig.Theme.PieceColors, appConfig.Theme.ExtraColor)
	return &t
}
