package snake

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config holds the engine's grid size and speed curve.
type Config struct {
	Width           int
	Height          int
	InitialInterval time.Duration // tick interval at the start of a round
	IntervalStep    time.Duration // subtracted from the interval per food eaten
	MinInterval     time.Duration // the interval never drops below this
}

// DefaultConfig returns the classic 50×30 board at 150ms per tick, one
// millisecond faster per food, floored at 80ms.
func DefaultConfig() Config {
	return Config{
		Width:           50,
		Height:          30,
		InitialInterval: 150 * time.Millisecond,
		IntervalStep:    time.Millisecond,
		MinInterval:     80 * time.Millisecond,
	}
}

// ConfigFrom converts loaded settings to an engine configuration.
func ConfigFrom(c config.SnakeConfig) Config {
	return Config{
		Width:           c.Grid.Width,
		Height:          c.Grid.Height,
		InitialInterval: c.Speed.InitialInterval(),
		IntervalStep:    c.Speed.Step(),
		MinInterval:     c.Speed.MinInterval(),
	}
}

// Validate reports whether the configuration can drive a game.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("snake: grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.InitialInterval <= 0 || c.MinInterval <= 0 {
		return errors.New("snake: tick intervals must be positive")
	}
	if c.IntervalStep < 0 {
		return errors.New("snake: interval step must not be negative")
	}
	if c.MinInterval > c.InitialInterval {
		return fmt.Errorf("snake: minimum interval %v exceeds initial interval %v", c.MinInterval, c.InitialInterval)
	}
	return nil
}

// Center returns the starting cell of a new round.
func (c Config) Center() core.Cell {
	return core.Cell{X: core.Max(1, c.Width/2), Y: core.Max(1, c.Height/2)}
}
