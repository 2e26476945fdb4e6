package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  50,
			Height: 30,
		},
		Speed: SpeedConfig{
			InitialIntervalMS: 150,
			StepMS:            1,
			MinIntervalMS:     80,
		},
		Controls: ControlsConfig{
			Start:   []string{" ", "enter"},
			Up:      []string{"up", "w"},
			Down:    []string{"down", "s"},
			Left:    []string{"left", "a"},
			Right:   []string{"right", "d"},
			Dismiss: []string{"esc", "x"},
		},
		Storage: StorageConfig{
			HighScoreKey: "snakeHighScore",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
