package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkamenev/torsnake/internal/config"
	"github.com/mkamenev/torsnake/internal/scores"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top-5 high scores.

Examples:
  torsnake scores
  torsnake scores --config ./my-config.yaml`,
	Run: runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	backend, err := scores.Open(cfg.Scores.Backend, cfg.Scores.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score store: %v\n", err)
		os.Exit(1)
	}
	store := scores.NewStore(backend)
	store.SetLimit(cfg.Scores.Limit)
	defer store.Close()

	entries := store.Load()

	fmt.Println("High Scores")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'torsnake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-15s  %s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-15s  %s\n", "----", "----", "-----")

	for i, entry := range entries {
		fmt.Printf("  %-4d  %-15s  %d\n", i+1, entry.Name, entry.Score)
	}

	fmt.Println()
	fmt.Printf("Best: %d (%s)\n", entries[0].Score, entries[0].Name)
}
