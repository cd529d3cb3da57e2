package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maysday/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print recent seasons",
	Long: `Display the most recent seasons and totals across all of them.

Examples:
  maysday scores
  maysday scores --limit 5`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of seasons to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening seasons database: %w", err)
	}
	defer store.Close()

	seasons, err := store.RecentSeasons(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Seasons - Maysday")
	fmt.Println()

	if len(seasons) == 0 {
		fmt.Println("No seasons recorded yet.")
		fmt.Println()
		fmt.Println("Run 'maysday play' and sleep through a night to start one!")
		return nil
	}

	fmt.Printf("  %-5s  %-5s  %-8s  %-8s  %s\n", "#", "Days", "Tomatoes", "Saplings", "Date")
	fmt.Printf("  %-5s  %-5s  %-8s  %-8s  %s\n", "-", "----", "--------", "--------", "----")
	for _, s := range seasons {
		fmt.Printf("  %-5d  %-5d  %-8d  %-8d  %s\n", s.ID, s.Days, s.Tomatoes, s.Collected, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best harvest: %d  Longest run: %d days  Total tomatoes: %d\n",
			stats.BestHarvest, stats.LongestRun, stats.Tomatoes)
	}
	return nil
}
