package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jewels/internal/registry"
	"github.com/vovakirdan/tui-jewels/internal/storage"
)

var (
	flagScoresLimit int
	flagAllScores   bool
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top scores for a variant, or a summary of every
variant when none is given.

Examples:
  jewels scores
  jewels scores jewels
  jewels scores jewels_small --limit 20
  jewels scores jewels --all
  jewels scores jewels --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "Show every stored round, ignoring --limit")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every stored round of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'jewels list' to see the variants", gameID)
	}

	if flagClearScores {
		n, err := store.ClearScores(gameID)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d rounds of %s.\n", n, registry.Title(gameID))
		return nil
	}

	scores, err := loadScores(store, gameID, flagScoresLimit, flagAllScores)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", registry.Title(gameID))
	if len(scores) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'jewels play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-5s  %-5s  %-12s  %s\n", "Rank", "Score", "Moves", "Chain", "Player", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-5s  %-12s  %s\n", "----", "-----", "-----", "-----", "------", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-7d  %-5d  x%-4d  %-12s  %s\n",
			i+1, e.Score, e.Moves, e.BestChain, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Rounds: %d  Average: %.1f  Longest chain: x%d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestChain)
	}
	return nil
}

// loadScores returns the best limit rounds of a variant, or every round
// when all is set.
func loadScores(store *storage.Store, gameID string, limit int, all bool) ([]storage.ScoreEntry, error) {
	if all {
		return store.AllScores(gameID)
	}
	return store.TopScores(gameID, limit)
}

// printSummary prints one line per variant that has rounds.
func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}

	fmt.Printf("  %-14s  %-6s  %-6s  %-8s  %-5s  %s\n", "Variant", "Rounds", "Best", "Average", "Chain", "Last played")
	for _, g := range registry.List() {
		s, ok := all[g.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-14s  %-6d  %-6d  %-8.1f  x%-4d  %s\n",
			g.ID, s.GamesCount, s.HighScore, s.AvgScore, s.BestChain, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
