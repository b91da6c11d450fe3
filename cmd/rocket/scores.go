package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rocket-run/internal/games/rocket"
	"github.com/vovakirdan/rocket-run/internal/platform/tui"
	"github.com/vovakirdan/rocket-run/internal/registry"
	"github.com/vovakirdan/rocket-run/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores with the level each run reached.

Examples:
  rocket scores
  rocket scores --limit 25
  rocket scores --interactive
  rocket scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scrollable table")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	title := registry.Title(rocket.GameID)

	if flagClear {
		if err := store.ClearScores(rocket.GameID); err != nil {
			return err
		}
		fmt.Println("All scores cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, rocket.GameID, title, width, height)
	}

	scores, err := store.TopScores(rocket.GameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rocket play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-10s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-10s  %-5s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-10d  %-5d  %s\n", i+1, entry.Player, entry.Score, entry.Level, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(rocket.GameID); err == nil {
		fmt.Printf("Best: %d (level %d)  Games: %d  Average: %.0f\n",
			stats.HighScore, stats.BestLevel, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
