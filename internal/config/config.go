// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Speed    SpeedConfig    `yaml:"speed"`
	Controls ControlsConfig `yaml:"controls"`
	Storage  StorageConfig  `yaml:"storage"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the tick interval curve.
type SpeedConfig struct {
	InitialIntervalMS int `yaml:"initial_interval_ms"`
	StepMS            int `yaml:"step_ms"`
	MinIntervalMS     int `yaml:"min_interval_ms"`
}

// ControlsConfig lists the key names bound to each action.
// Names follow Bubble Tea's KeyMsg.String() ("up", "enter", " ", "ctrl+c").
type ControlsConfig struct {
	Start   []string `yaml:"start"`
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Dismiss []string `yaml:"dismiss"`
}

// StorageConfig names the persisted values.
type StorageConfig struct {
	HighScoreKey string `yaml:"high_score_key"`
}

// InitialInterval returns the starting tick interval.
func (s SpeedConfig) InitialInterval() time.Duration {
	return time.Duration(s.InitialIntervalMS) * time.Millisecond
}

// Step returns the amount the interval shrinks per food eaten.
func (s SpeedConfig) Step() time.Duration {
	return time.Duration(s.StepMS) * time.Millisecond
}

// MinInterval returns the interval floor.
func (s SpeedConfig) MinInterval() time.Duration {
	return time.Duration(s.MinIntervalMS) * time.Millisecond
}

// Validate reports the first problem found in the configuration.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		return fmt.Errorf("config: grid must be at least 1x1, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Speed.InitialIntervalMS <= 0 || c.Speed.MinIntervalMS <= 0 {
		return errors.New("config: tick intervals must be positive")
	}
	if c.Speed.StepMS < 0 {
		return fmt.Errorf("config: step_ms must not be negative, got %d", c.Speed.StepMS)
	}
	if c.Speed.MinIntervalMS > c.Speed.InitialIntervalMS {
		return fmt.Errorf("config: min_interval_ms (%d) exceeds initial_interval_ms (%d)",
			c.Speed.MinIntervalMS, c.Speed.InitialIntervalMS)
	}
	if len(c.Controls.Start) == 0 {
		return errors.New("config: at least one start key is required")
	}
	return nil
}
