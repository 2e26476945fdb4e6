package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options configures a game session.
type Options struct {
	Game     snake.Config
	Controls config.ControlsConfig
	Runtime  core.RuntimeConfig

	// Store persists the high score and finished games. Nil plays with an
	// in-memory high score.
	Store        *storage.Store
	Scope        string // defaults to storage.LocalScope
	HighScoreKey string // defaults to storage.DefaultHighScoreKey

	Logger        *log.Logger
	ScreenshotDir string // defaults to ~/.snake/screenshots
}

// frameSink is the engine's Renderer: it keeps the latest snapshot for View.
type frameSink struct {
	state  snake.State
	frames int
}

func (f *frameSink) Render(s snake.State) {
	f.state = s
	f.frames++
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a Snake session.
type Model struct {
	engine *snake.Engine
	sched  *tickScheduler
	sink   *frameSink
	screen *core.Screen

	store  *storage.Store
	scope  string
	logger *log.Logger

	keys  KeyMap
	hints snake.Hints
	help  help.Model

	screenshotDir string
	status        string
	scoreboard    *ScoreboardModel
	width, height int
	held          bool // a tick arrived while the board did not fit
	quitting      bool
}

// NewModel creates a paused game session.
func NewModel(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Scope == "" {
		opts.Scope = storage.LocalScope
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	sched := &tickScheduler{}
	sink := &frameSink{}
	engineOpts := []snake.Option{
		snake.WithRenderer(sink),
		snake.WithScheduler(sched),
		snake.WithSeed(opts.Runtime.Seed),
		snake.WithLogger(opts.Logger),
	}
	if opts.Store != nil {
		engineOpts = append(engineOpts, snake.WithHighScoreStore(opts.Store.HighScoreFor(opts.Scope, opts.HighScoreKey)))
	}

	engine, err := snake.New(opts.Game, engineOpts...)
	if err != nil {
		return Model{}, err
	}
	sink.state = engine.State()

	w, h := opts.Runtime.ScreenW, opts.Runtime.ScreenH
	if w <= 0 || h <= 0 {
		w, h = snake.RequiredSize(opts.Game.Width, opts.Game.Height)
		h++
	}

	keys := DefaultKeyMap()
	if len(opts.Controls.Start) > 0 {
		keys = NewKeyMap(opts.Controls)
	}
	hp := help.New()
	hp.Width = w

	return Model{
		engine:        engine,
		sched:         sched,
		sink:          sink,
		screen:        core.NewScreen(w, core.Max(h-1, 0)),
		store:         opts.Store,
		scope:         opts.Scope,
		logger:        opts.Logger,
		keys:          keys,
		hints:         keys.Hints(),
		help:          hp,
		screenshotDir: opts.ScreenshotDir,
		width:         w,
		height:        h,
	}, nil
}

// Init sets the window title. The engine starts paused, so no tick is
// scheduled until the player starts a round.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Snake")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action != core.ActionNone {
		m.status = ""
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.sched.Stop()
		return m, tea.Quit

	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Error("screenshot failed", "error", err)
			m.status = "Screenshot failed"
		} else {
			m.status = "Screenshot saved to " + path
		}

	case core.ActionStart:
		if !m.boardFits() {
			m.status = "Window too small to start"
			break
		}
		m.engine.Start()

	case core.ActionDismiss:
		m.engine.DismissGameOver()

	case core.ActionScoreboard:
		if m.engine.Running() {
			break
		}
		if m.store == nil {
			m.status = "Scores unavailable without a database"
			break
		}
		sb := NewScoreboardModel(m.store, m.scope, m.width, m.height, m.logger)
		sb.embedded = true
		m.scoreboard = &sb

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	default:
		if action.IsDirection() {
			if d, ok := snake.DirectionFor(action); ok {
				m.engine.RequestDirection(d)
			}
		}
	}

	return m, m.sched.cmd()
}

// handleTick runs one engine step for a tick of the current schedule.
// While the board does not fit, a current tick is held instead of
// advancing, and the loop resumes on the resize that makes it fit.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.boardFits() {
		if m.sched.current(msg) {
			m.held = true
		}
		return m, nil
	}
	if !m.sched.accept(msg) {
		return m, nil
	}

	if m.engine.Advance() == snake.OutcomeCollision {
		m.recordGame()
	}

	return m, m.sched.cmd()
}

// handleResize processes window resize events. The round is kept; Draw
// shows a resize prompt and ticks are held while the board does not fit.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
	m.help.Width = msg.Width

	var cmd tea.Cmd
	if m.held && m.boardFits() {
		m.held = false
		m.sched.resume()
		cmd = m.sched.cmd()
	}

	if m.scoreboard != nil {
		sb, _ := m.scoreboard.Update(msg)
		if next, ok := sb.(ScoreboardModel); ok {
			m.scoreboard = &next
		}
	}
	return m, cmd
}

func (m Model) boardFits() bool {
	cfg := m.engine.Config()
	return snake.Fits(m.screen, cfg.Width, cfg.Height)
}

func (m Model) updateScoreboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		m.scoreboard = nil
		return m, nil
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}

	m.scoreboard = &sb
	return m, cmd
}

// recordGame stores a finished game in the history.
func (m *Model) recordGame() {
	st := m.sink.state
	if st.Score <= 0 || m.store == nil {
		return
	}
	// Best-effort save, the game continues regardless
	if _, err := m.store.SaveScore(m.scope, st.Score); err != nil {
		m.logger.Error("could not record game", "scope", m.scope, "score", st.Score, "error", err)
		return
	}
	m.logger.Debug("game recorded", "scope", m.scope, "score", st.Score)
}

// saveScreenshot writes the current board as plain text.
func (m *Model) saveScreenshot() (string, error) {
	snake.Draw(m.screen, m.sink.state, m.hints)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s_%d.txt", timestamp, m.sink.state.Score))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// State returns the snapshot last rendered by the engine.
func (m Model) State() snake.State {
	return m.sink.state
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	snake.Draw(m.screen, m.sink.state, m.hints)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts a local Bubble Tea program for one session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
