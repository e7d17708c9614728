package main

import (
	"github.com/vovakirdan/slide/internal/core"
	"github.com/vovakirdan/slide/internal/platform/tui"
	"github.com/vovakirdan/slide/internal/registry"
	"github.com/vovakirdan/slide/internal/storage"
)

// runMenuLoop shows the campaign menu until the user quits. After a game
// ends the menu comes back.
func runMenuLoop(store *storage.Store, cfg core.RuntimeConfig) error {
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsBests {
			goBack, err := tui.RunBests(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		if err := playGame(game, store, cfg, 0); err != nil {
			logger.Error("game ended with an error", "game", game.ID(), "error", err)
		}
	}
}
