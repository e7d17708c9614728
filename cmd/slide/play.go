package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slide/internal/core"
	"github.com/vovakirdan/slide/internal/games/slide"
	"github.com/vovakirdan/slide/internal/games/slide/levels"
	"github.com/vovakirdan/slide/internal/platform/tui"
	"github.com/vovakirdan/slide/internal/registry"
	"github.com/vovakirdan/slide/internal/storage"
)

var (
	flagLevel      int
	flagLevelsFile string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a campaign",
	Long: `Start playing the specified campaign.

Without a game, a menu lets you pick a campaign. Without --level, a level
selector opens on the first level you have not solved yet.

Controls:
  Arrows/WASD   - Slide the selected piece
  Tab/Space     - Select next piece
  U/Backspace   - Undo
  R             - Restart level
  H             - Hint
  ] / [         - Next / previous level
  Enter         - Continue after solving
  P             - Pause
  Esc           - Back
  Q/Ctrl+C      - Quit

Examples:
  slide play
  slide play slide
  slide play slide_hands --level 2
  slide play --levels ./my-levels.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (1-based)")
	playCmd.Flags().StringVar(&flagLevelsFile, "levels", "", "Play a campaign file instead of a registered game")
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg := terminalConfig()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	var game registry.Game
	switch {
	case flagLevelsFile != "":
		c, err := levels.LoadFile(flagLevelsFile)
		if err != nil {
			return err
		}
		game = slide.FromCampaign(c)
	case len(args) == 1:
		g, _, err := lookupCampaign(args[0])
		if err != nil {
			return err
		}
		game = g
	default:
		return runMenuLoop(store, cfg)
	}

	return playGame(game, store, cfg, flagLevel)
}

// playGame runs one game, asking for the level first when none is given.
// A level of 0 opens the level selector; backing out of it returns nil.
func playGame(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, level int) error {
	if level == 0 {
		if cg, ok := game.(interface{ Campaign() *levels.Campaign }); ok {
			var bests core.BestScores
			if store != nil {
				bests = store.Bests(game.ID())
			}
			selected, err := tui.RunLevelSelector(cg.Campaign(), bests, cfg)
			if err != nil {
				return err
			}
			if selected == 0 {
				return nil
			}
			level = selected
		}
	}

	cfg.Level = level
	logger.Debug("starting game", "game", game.ID(), "level", level)

	return tui.Run(game, cfg, tui.Options{
		Store:  store,
		Logger: logger,
		Theme:  theme(),
	})
}

// terminalConfig returns a runtime config sized to the terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// printStoreHint tells the user where bests are kept.
func printStoreHint(store *storage.Store) {
	if store == nil {
		fmt.Println("Best moves are not saved without a database.")
		return
	}
	fmt.Printf("Best moves are saved in %s\n", appConfig.Storage.Path)
}
