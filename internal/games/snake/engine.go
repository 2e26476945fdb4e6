// Package snake implements the Snake game engine: a two-state machine
// (paused, running) that advances the snake one cell per tick on a bounded
// grid. The engine is pure logic; drawing, timing and persistence go through
// the Renderer, Scheduler and HighScoreStore interfaces.
package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Renderer receives a snapshot after every state change.
type Renderer interface {
	Render(State)
}

// Scheduler drives Advance at the current tick interval. Reschedule replaces
// any pending trigger; a tick already scheduled at the old interval must be
// dropped, not delivered late.
type Scheduler interface {
	Reschedule(interval time.Duration)
	Stop()
}

// HighScoreStore persists the single high-score value.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// Outcome describes what a call to Advance did.
type Outcome int

const (
	OutcomeIdle      Outcome = iota // engine paused, nothing happened
	OutcomeMoved                    // snake translated by one cell
	OutcomeAte                      // snake grew by one cell and scored
	OutcomeCollision                // round ended, state untouched
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Engine owns the game state.
type Engine struct {
	cfg Config

	// Collaborators
	renderer  Renderer
	scheduler Scheduler
	store     HighScoreStore
	rng       *rand.Rand
	logger    *log.Logger

	// Round state
	snake     []core.Cell // Head at index 0
	food      core.Cell
	hasFood   bool
	direction Direction // Applied on the last tick
	nextDir   Direction // Used by the next tick
	score     int
	highScore int
	interval  time.Duration
	ticks     uint64

	paused    bool
	gameOver  bool
	overlay   bool
	collision Collision
}

// Option configures an Engine.
type Option func(*Engine)

// WithRenderer sets the renderer notified after each state change.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// WithScheduler sets the tick scheduler.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.scheduler = s }
}

// WithHighScoreStore sets where the high score is read from and written to.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(e *Engine) { e.store = s }
}

// WithRand sets the random source used for food placement.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithSeed seeds food placement for reproducible games.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

type nopRenderer struct{}

func (nopRenderer) Render(State) {}

type nopScheduler struct{}

func (nopScheduler) Reschedule(time.Duration) {}
func (nopScheduler) Stop()                    {}

// memoryHighScore keeps the high score for the lifetime of the process.
type memoryHighScore struct{ v int }

func (m *memoryHighScore) LoadHighScore() (int, error) { return m.v, nil }
func (m *memoryHighScore) SaveHighScore(score int) error {
	m.v = score
	return nil
}

// New creates a paused engine. The high score is read once here; a read
// failure degrades to 0.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:       cfg,
		renderer:  nopRenderer{},
		scheduler: nopScheduler{},
		store:     &memoryHighScore{},
		logger:    log.New(io.Discard),
		paused:    true,
		direction: DirRight,
		nextDir:   DirRight,
		interval:  cfg.InitialInterval,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	high, err := e.store.LoadHighScore()
	if err != nil || high < 0 {
		e.logger.Warn("high score unavailable, starting from 0", "error", err)
		high = 0
	}
	e.highScore = high

	e.snake = []core.Cell{cfg.Center()}
	e.spawnFood()

	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Running reports whether a round is in progress.
func (e *Engine) Running() bool {
	return !e.paused
}

// Start begins a new round. It is ignored while a round is running.
func (e *Engine) Start() bool {
	if !e.paused {
		return false
	}

	e.snake = []core.Cell{e.cfg.Center()}
	e.direction = DirRight
	e.nextDir = DirRight
	e.interval = e.cfg.InitialInterval
	e.ticks = 0
	e.setScore(0)
	e.spawnFood()
	e.paused = false
	e.gameOver = false
	e.overlay = false
	e.collision = CollisionNone

	e.logger.Debug("round started", "width", e.cfg.Width, "height", e.cfg.Height, "interval", e.interval)

	e.scheduler.Reschedule(e.interval)
	e.renderer.Render(e.State())
	return true
}

// RequestDirection sets the direction used by the next tick. Requests are
// ignored while paused and when d reverses the direction the snake is
// currently moving in.
func (e *Engine) RequestDirection(d Direction) bool {
	if e.paused {
		return false
	}
	if d == e.direction.Opposite() {
		return false
	}
	e.nextDir = d
	e.renderer.Render(e.State())
	return true
}

// Advance moves the game forward by one tick.
func (e *Engine) Advance() Outcome {
	if e.paused {
		return OutcomeIdle
	}

	head := e.nextDir.Step(e.snake[0])

	// Checked against the full body: the tail has not moved yet
	if kind := e.collides(head); kind != CollisionNone {
		e.endRound(kind)
		return OutcomeCollision
	}

	e.direction = e.nextDir
	e.ticks++
	e.snake = append(e.snake, core.Cell{})
	copy(e.snake[1:], e.snake)
	e.snake[0] = head

	outcome := OutcomeMoved
	if e.hasFood && head == e.food {
		outcome = OutcomeAte
		e.setScore(e.score + 1)
		e.spawnFood()
		e.speedUp()
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	e.renderer.Render(e.State())
	return outcome
}

// DismissGameOver hides the game-over overlay.
func (e *Engine) DismissGameOver() {
	if !e.overlay {
		return
	}
	e.overlay = false
	e.renderer.Render(e.State())
}

func (e *Engine) collides(head core.Cell) Collision {
	if !head.Within(e.cfg.Width, e.cfg.Height) {
		return CollisionWall
	}
	if e.occupied(head) {
		return CollisionSelf
	}
	return CollisionNone
}

func (e *Engine) occupied(c core.Cell) bool {
	for _, seg := range e.snake {
		if seg == c {
			return true
		}
	}
	return false
}

func (e *Engine) endRound(kind Collision) {
	e.paused = true
	e.gameOver = true
	e.overlay = true
	e.collision = kind
	e.scheduler.Stop()

	e.logger.Info("game over", "score", e.score, "high_score", e.highScore, "cause", kind, "length", len(e.snake))
	e.renderer.Render(e.State())
}

// setScore updates the score and raises the high score when beaten.
func (e *Engine) setScore(score int) {
	e.score = score
	if score <= e.highScore {
		return
	}
	e.highScore = score
	if err := e.store.SaveHighScore(score); err != nil {
		e.logger.Error("could not persist high score", "score", score, "error", err)
	}
}

// speedUp shortens the tick interval and reschedules the trigger.
func (e *Engine) speedUp() {
	next := e.interval - e.cfg.IntervalStep
	if next < e.cfg.MinInterval {
		next = e.cfg.MinInterval
	}
	if next == e.interval {
		return
	}
	e.interval = next
	e.scheduler.Reschedule(next)
}
