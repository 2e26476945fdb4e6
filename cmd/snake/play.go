package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake in this terminal",
	Long: `Start a game in the local terminal.

Controls:
  Space/Enter  - Start or restart a round
  Arrows/WASD  - Steer
  Esc/X        - Close the game-over message
  Tab          - Scoreboard (while paused)
  Ctrl+S       - Save a screenshot
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - The classic curve from the config (150ms, -1ms per food, 80ms floor)
  hard   - Fast start, steep speed-up
  fixed  - No speed-up

Examples:
  snake play
  snake play --difficulty easy
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play",
	Long: `Show a difficulty picker before the game starts. The presets are
applied on top of the loaded configuration; --difficulty is ignored.

Examples:
  snake menu
  snake menu --width 30 --height 20`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runPlay(_ *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	return play(settings)
}

func runMenu(_ *cobra.Command, _ []string) error {
	flagDifficulty = ""
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	width, height := terminalSize()
	chosen, ok, err := tui.RunDifficultyMenu(settings, width, height)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return play(chosen)
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func play(settings config.SnakeConfig) error {
	// The alt screen owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := terminalSize()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without persistence", "error", err)
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Game:     snake.ConfigFrom(settings),
		Controls: settings.Controls,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Store:        store,
		Scope:        storage.LocalScope,
		HighScoreKey: settings.Storage.HighScoreKey,
		Logger:       logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
