// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play in the local terminal
//	snake menu               - Pick a difficulty, then play
//	snake scores             - Show the finished-game history
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--db <path>          - Set database path (default: ~/.snake/snake.db)
//	--config <path>      - Use a custom YAML configuration
//	--difficulty <name>  - easy, normal, hard or fixed
//	--width, --height    - Override the board size
//	--seed <value>       - Set RNG seed for reproducible food placement
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
	flagSeed       int64
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake in your terminal. Steer the snake to the food, grow longer,
and avoid the walls and your own tail. The game speeds up with every bite.

Available commands:
  play     - Play in this terminal (default)
  menu     - Pick a difficulty, then play
  scores   - View the finished-game history
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake play --difficulty hard
  snake play --width 30 --height 20
  snake scores --limit 5
  snake serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagDBPath, "db", "~/.snake/snake.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagWidth, "width", 0, "Board width in cells (0 = from config)")
	pf.IntVar(&flagHeight, "height", 0, "Board height in cells (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings resolves the configuration from the --config, --difficulty,
// --width and --height flags.
func loadSettings() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.SnakeConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	config.ApplySnakePreset(&cfg, preset)

	if flagWidth > 0 {
		cfg.Grid.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Grid.Height = flagHeight
	}

	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}

// newLogger returns a logger writing to --log-file, or to fallback when no
// file is set. The returned closer must be called on exit.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closer := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
