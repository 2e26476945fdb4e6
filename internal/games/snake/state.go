package snake

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Collision identifies what ended a round.
type Collision string

const (
	CollisionNone Collision = ""
	CollisionWall Collision = "wall"
	CollisionSelf Collision = "self"
)

// State is an immutable snapshot of the engine.
type State struct {
	Width, Height int

	Snake   []core.Cell // Head at index 0; a copy owned by the snapshot
	Food    core.Cell
	HasFood bool

	Direction     Direction // Applied on the last tick
	NextDirection Direction // Pending for the next tick

	Score     int
	HighScore int
	Interval  time.Duration
	Ticks     uint64

	Paused         bool
	GameOver       bool // The last round ended in a collision
	OverlayVisible bool // The game-over overlay has not been dismissed
	Collision      Collision
}

// State returns a snapshot of the current game state.
func (e *Engine) State() State {
	body := make([]core.Cell, len(e.snake))
	copy(body, e.snake)

	return State{
		Width:          e.cfg.Width,
		Height:         e.cfg.Height,
		Snake:          body,
		Food:           e.food,
		HasFood:        e.hasFood,
		Direction:      e.direction,
		NextDirection:  e.nextDir,
		Score:          e.score,
		HighScore:      e.highScore,
		Interval:       e.interval,
		Ticks:          e.ticks,
		Paused:         e.paused,
		GameOver:       e.gameOver,
		OverlayVisible: e.overlay,
		Collision:      e.collision,
	}
}

// Head returns the first snake cell.
func (s State) Head() core.Cell {
	if len(s.Snake) == 0 {
		return core.Cell{}
	}
	return s.Snake[0]
}

// String returns a one-line summary, handy in logs and test failures.
func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick=%d score=%d high=%d len=%d head=(%d,%d) dir=%s",
		s.Ticks, s.Score, s.HighScore, len(s.Snake), s.Head().X, s.Head().Y, s.Direction)
	if s.HasFood {
		fmt.Fprintf(&b, " food=(%d,%d)", s.Food.X, s.Food.Y)
	}
	fmt.Fprintf(&b, " interval=%v paused=%v", s.Interval, s.Paused)
	if s.GameOver {
		fmt.Fprintf(&b, " game_over=%s", s.Collision)
	}
	return b.String()
}
