package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScope       string
	flagLimit       int
	flagClear       bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the finished-game history",
	Long: `Display the top finished games for a player.

Local games are stored under the "local" scope; games played over SSH are
stored under the SSH user name.

Examples:
  snake scores
  snake scores --scope alice --limit 5
  snake scores --clear
  snake scores -i`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScope, "scope", storage.LocalScope, "Player scope (local or an SSH user name)")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history and high score of the scope")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all scopes in a full-screen table")
}

func runScores(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(flagScope, settings.Storage.HighScoreKey); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared scores for %s\n", flagScope)
		return nil
	}

	if flagInteractive {
		logger, closeLog, err := newLogger("snake", os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		width, height := terminalSize()
		return tui.RunScoreboard(store, flagScope, width, height, logger)
	}

	return printScores(cmd, store, settings.Storage.HighScoreKey)
}

func printScores(cmd *cobra.Command, store *storage.Store, highScoreKey string) error {
	out := cmd.OutOrStdout()

	scores, err := store.TopScores(flagScope, flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Snake High Scores - %s\n\n", flagScope)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'snake play' to set the first high score!")
		if scopes, err := store.Scopes(); err == nil && len(scopes) > 0 {
			fmt.Fprintf(out, "Scopes with games: %s\n", strings.Join(scopes, ", "))
		}
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	high, err := store.HighScore(storage.HighScoreKey(highScoreKey, flagScope))
	if err == nil {
		fmt.Fprintf(out, "Best: %d\n", high)
	}
	if stats, err := store.Stats(flagScope); err == nil {
		fmt.Fprintf(out, "Games: %d  Average: %.1f\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}
