package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide/internal/games/slide"
	"github.com/vovakirdan/slide/internal/storage"
)

var (
	flagReset  bool
	flagRecent int
)

var bestCmd = &cobra.Command{
	Use:   "best <game>",
	Short: "Show best moves for a campaign",
	Long: `Display the best move count of every solved level, the most recent
solves and overall statistics.

Examples:
  slide best slide
  slide best slide_hands --recent 5
  slide best slide --reset`,
	Args: cobra.ExactArgs(1),
	RunE: runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all best moves and solves for the game")
	bestCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent solves to show")
}

func runBest(_ *cobra.Command, args []string) error {
	game, c, err := lookupCampaign(args[0])
	if err != nil {
		return err
	}

	store := openStore()
	if store == nil {
		printStoreHint(nil)
		return errors.New("no database available")
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearBests(game.ID()); err != nil {
			return err
		}
		fmt.Printf("Best moves for %s cleared.\n", game.Title())
		return nil
	}

	bests, err := store.AllBests(game.ID())
	if err != nil {
		return err
	}

	fmt.Printf("Best Moves - %s\n", game.Title())
	fmt.Println()

	if len(bests) == 0 {
		fmt.Println("No levels solved yet.")
		fmt.Println()
		fmt.Printf("Play 'slide play %s' to set the first best!\n", game.ID())
		return nil
	}

	fmt.Printf("  %-5s  %-20s  %-5s  %-5s  %-8s  %s\n", "Level", "Name", "Par", "Best", "Rating", "Date")
	fmt.Printf("  %-5s  %-20s  %-5s  %-5s  %-8s  %s\n", "-----", "----", "---", "----", "------", "----")

	for _, e := range bests {
		d, ok := c.Level(e.Level)
		if !ok {
			// Level removed from the campaign since it was solved
			continue
		}
		fmt.Printf("  %-5d  %-20s  %-5s  %-5d  %-8s  %s\n",
			e.Level, d.Name, countText(d.MovePar()), e.Moves,
			slide.Rating(e.Moves, d.MovePar()), e.UpdatedAt.Format("2006-01-02 15:04"))
	}

	if err := printRecent(store, game.ID()); err != nil {
		return err
	}

	stats, err := store.GetGameStats(game.ID())
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Solved %d of %d levels in %d solves (%d moves total).\n",
		stats.LevelsSolved, c.Count(), stats.Solves, stats.TotalMoves)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	printStoreHint(store)
	return nil
}

// printRecent lists the latest solves, newest first.
func printRecent(store *storage.Store, gameID string) error {
	if flagRecent <= 0 {
		return nil
	}

	solves, err := store.RecentSolves(gameID, flagRecent)
	if err != nil {
		return err
	}
	if len(solves) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent solves:")
	for _, s := range solves {
		fmt.Printf("  %s  level %-3d  %d moves\n", s.CreatedAt.Format("2006-01-02 15:04"), s.Level, s.Moves)
	}
	return nil
}
