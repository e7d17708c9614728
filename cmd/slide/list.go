package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available campaigns",
	Long:  `Shows a list of all campaigns, built in and loaded from the levels directory.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No campaigns available.")
		return
	}

	fmt.Println("Available campaigns:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'slide play <id>' to play a campaign.")
}
