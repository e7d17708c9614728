package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide/internal/games/slide"
	"github.com/vovakirdan/slide/internal/games/slide/levels"
	"github.com/vovakirdan/slide/internal/registry"
	"github.com/vovakirdan/slide/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels <game>",
	Short: "Show the levels of a campaign",
	Long: `Lists every level of a campaign with its par and your best move count.

Examples:
  slide levels slide
  slide levels slide_hands`,
	Args: cobra.ExactArgs(1),
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, args []string) error {
	game, c, err := lookupCampaign(args[0])
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	bests := map[int]int{}
	if store != nil {
		entries, err := store.AllBests(game.ID())
		if err != nil {
			return err
		}
		for _, e := range entries {
			bests[e.Level] = e.Moves
		}
	}

	fmt.Printf("%s - %d levels\n", game.Title(), c.Count())
	fmt.Println()
	fmt.Printf("  %-3s  %-20s  %-5s  %-5s  %-5s  %s\n", "#", "Name", "Size", "Par", "Best", "Rating")
	fmt.Printf("  %-3s  %-20s  %-5s  %-5s  %-5s  %s\n", "-", "----", "----", "---", "----", "------")

	for n := 1; n <= c.Count(); n++ {
		d, _ := c.Level(n)
		best := bests[n]
		rating := ""
		if best > 0 {
			rating = slide.Rating(best, d.MovePar())
		}
		fmt.Printf("  %-3d  %-20s  %-5s  %-5s  %-5s  %s\n",
			n, d.Name, fmt.Sprintf("%dx%d", d.Width, d.Height), countText(d.MovePar()), countText(best), rating)
	}

	fmt.Println()
	fmt.Printf("Run 'slide play %s --level N' to play a level.\n", game.ID())
	return nil
}

// lookupCampaign creates a registered game and returns its campaign.
func lookupCampaign(gameID string) (registry.Game, *levels.Campaign, error) {
	if !registry.Exists(gameID) {
		return nil, nil, fmt.Errorf("unknown game %q, run 'slide list' to see available campaigns", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return nil, nil, fmt.Errorf("creating game: %w", err)
	}

	cg, ok := game.(interface{ Campaign() *levels.Campaign })
	if !ok {
		return nil, nil, fmt.Errorf("game %q has no levels", gameID)
	}
	return game, cg.Campaign(), nil
}

// openStore opens the configured database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		logger.Warn("could not open best moves database", "path", appConfig.Storage.Path, "error", err)
		return nil
	}
	return store
}

// countText renders a move count, or a dash when unset.
func countText(n int) string {
	if n <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d", n)
}
