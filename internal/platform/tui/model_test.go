package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	keyStart = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

// tinyGame is a 2x1 board: the only free cell holds food, so the first tick
// eats and the second one hits the wall.
func tinyGame() snake.Config {
	return snake.Config{
		Width:           2,
		Height:          1,
		InitialInterval: 100 * time.Millisecond,
		IntervalStep:    time.Millisecond,
		MinInterval:     50 * time.Millisecond,
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "snake.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = t.TempDir()
	}
	opts.Runtime = core.RuntimeConfig{ScreenW: 60, ScreenH: 40, Seed: 1}
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

// tick delivers the tick the model currently expects.
func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg{Gen: m.sched.gen})
}

func TestModelStartsPaused(t *testing.T) {
	m := newTestModel(t, Options{Game: snake.DefaultConfig()})

	if !m.State().Paused {
		t.Error("Session should start paused")
	}
	if !strings.Contains(m.View(), "Press Space/Enter to start") {
		t.Errorf("Paused view should prompt to start:\n%s", m.View())
	}

	// Ticks are not scheduled before the first start
	m, cmd := update(t, m, TickMsg{Gen: 0})
	if cmd != nil {
		t.Error("Tick before start should not schedule another")
	}
	if m.State().Ticks != 0 {
		t.Error("Engine should not advance before start")
	}
}

func TestModelStartSchedulesTicks(t *testing.T) {
	m := newTestModel(t, Options{Game: snake.DefaultConfig()})

	m, cmd := update(t, m, keyStart)
	if cmd == nil {
		t.Fatal("Start should schedule the first tick")
	}
	if m.State().Paused {
		t.Fatal("Engine should run after start")
	}

	m, cmd = tick(t, m)
	if cmd == nil {
		t.Error("Running engine should keep ticking")
	}
	if got := m.State().Head(); got != (core.Cell{X: 26, Y: 15}) {
		t.Errorf("head = %v, expected (26,15)", got)
	}

	// A second start while running is ignored and schedules nothing
	if _, cmd := update(t, m, keyStart); cmd != nil {
		t.Error("Start while running should not schedule an extra tick")
	}
}

func TestModelSteering(t *testing.T) {
	m := newTestModel(t, Options{Game: snake.DefaultConfig()})
	m, _ = update(t, m, keyStart)

	m, _ = update(t, m, runeKey('w'))
	if got := m.State().NextDirection; got != snake.DirUp {
		t.Errorf("pending direction = %s, expected up", got)
	}

	// Reversal of the applied direction is ignored
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.State().NextDirection; got != snake.DirUp {
		t.Errorf("pending direction = %s, expected up", got)
	}
}

func TestModelDropsStaleTick(t *testing.T) {
	m := newTestModel(t, Options{Game: tinyGame()})
	m, _ = update(t, m, keyStart)
	first := m.sched.gen

	// Eating speeds up and reschedules
	m, _ = tick(t, m)
	if m.State().Score != 1 {
		t.Fatalf("expected to eat on the first tick, got %s", m.State())
	}
	if m.sched.gen == first {
		t.Fatal("speed-up should start a new schedule")
	}

	before := m.State()
	m, cmd := update(t, m, TickMsg{Gen: first})
	if cmd != nil {
		t.Error("Stale tick should not schedule another")
	}
	if m.State().Ticks != before.Ticks {
		t.Error("Stale tick should not advance the engine")
	}
}

func TestModelRecordsFinishedGame(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, Options{Game: tinyGame(), Store: store})

	m, _ = update(t, m, keyStart)
	m, _ = tick(t, m) // eat
	m, cmd := tick(t, m)

	st := m.State()
	if !st.GameOver || !st.OverlayVisible {
		t.Fatalf("expected game over, got %s", st)
	}
	if cmd != nil {
		t.Error("No tick should be scheduled after game over")
	}
	if !strings.Contains(m.View(), "Game Over! Your score: 1") {
		t.Errorf("Game over overlay missing:\n%s", m.View())
	}

	scores, err := store.TopScores(storage.LocalScope, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 1 {
		t.Errorf("expected one recorded game with score 1, got %v", scores)
	}

	high, err := store.HighScore(storage.HighScoreKey(storage.DefaultHighScoreKey, storage.LocalScope))
	if err != nil || high != 1 {
		t.Errorf("persisted high score = %d, %v, expected 1", high, err)
	}

	m, _ = update(t, m, keyEsc)
	if m.State().OverlayVisible {
		t.Error("Esc should dismiss the overlay")
	}
}

func TestModelLoadsHighScoreForScope(t *testing.T) {
	store := openStore(t)
	if _, err := store.RaiseHighScore(storage.HighScoreKey(storage.DefaultHighScoreKey, "alice"), 42); err != nil {
		t.Fatalf("RaiseHighScore() failed: %v", err)
	}

	alice := newTestModel(t, Options{Game: snake.DefaultConfig(), Store: store, Scope: "alice"})
	if got := alice.State().HighScore; got != 42 {
		t.Errorf("alice high score = %d, expected 42", got)
	}

	local := newTestModel(t, Options{Game: snake.DefaultConfig(), Store: store})
	if got := local.State().HighScore; got != 0 {
		t.Errorf("local high score = %d, expected 0", got)
	}
}

func TestModelScoreboard(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(storage.LocalScope, 7); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := newTestModel(t, Options{Game: snake.DefaultConfig(), Store: store})
	m, _ = update(t, m, keyTab)
	if m.scoreboard == nil {
		t.Fatal("Tab should open the scoreboard while paused")
	}
	if view := m.View(); !strings.Contains(view, "SNAKE HIGH SCORES - local") {
		t.Errorf("Scoreboard title missing:\n%s", view)
	}

	m, cmd := update(t, m, keyEsc)
	if m.scoreboard != nil {
		t.Error("Esc should close the scoreboard")
	}
	if cmd != nil {
		t.Error("Closing the scoreboard should not quit the session")
	}

	// Not available while a round is running
	m, _ = update(t, m, keyStart)
	m, _ = update(t, m, keyTab)
	if m.scoreboard != nil {
		t.Error("Scoreboard should not open while running")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, Options{Game: snake.DefaultConfig(), ScreenshotDir: dir})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one screenshot, got %d", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "High Score: 0") {
		t.Errorf("screenshot should contain the HUD:\n%s", data)
	}
	if !strings.Contains(m.View(), "Screenshot saved") {
		t.Error("status line should confirm the screenshot")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, Options{Game: snake.DefaultConfig()})
	m, _ = update(t, m, keyStart)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if !m.IsQuitting() || m.View() != "" {
		t.Error("quitting model should render nothing")
	}
	if m.sched.accept(TickMsg{Gen: m.sched.gen - 1}) {
		t.Error("ticks in flight should be dropped after quit")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, Options{Game: snake.DefaultConfig()})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(m.View(), "Window too small") {
		t.Errorf("small window should show the resize prompt:\n%s", m.View())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	if strings.Contains(m.View(), "Window too small") {
		t.Error("prompt should disappear once the board fits")
	}
}

func TestModelRefusesStartWhenBoardDoesNotFit(t *testing.T) {
	m := newTestModel(t, Options{Game: snake.DefaultConfig()})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m, cmd := update(t, m, keyStart)
	if cmd != nil {
		t.Error("Start in a small window should not schedule ticks")
	}
	if !m.State().Paused {
		t.Error("Round should not start while the board is hidden")
	}
	if !strings.Contains(m.View(), "Window too small to start") {
		t.Errorf("status line should explain the refusal:\n%s", m.View())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	m, cmd = update(t, m, keyStart)
	if cmd == nil || m.State().Paused {
		t.Error("Start should work once the board fits")
	}
}

func TestModelHoldsTicksWhileBoardDoesNotFit(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, Options{Game: snake.DefaultConfig(), Store: store})
	m, _ = update(t, m, keyStart)
	m, _ = tick(t, m)
	before := m.State()

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd != nil {
		t.Error("Shrinking should not schedule a tick")
	}
	for range 30 {
		m, cmd = tick(t, m)
		if cmd != nil {
			t.Fatal("Held ticks should not schedule more ticks")
		}
	}
	if st := m.State(); st.Ticks != before.Ticks || st.Head() != before.Head() || st.Paused {
		t.Errorf("Round should be frozen while hidden, got %s", st)
	}
	if !m.held {
		t.Fatal("Model should remember the held tick")
	}

	// Steering while hidden must not restart the loop
	if _, cmd := update(t, m, runeKey('w')); cmd != nil {
		t.Error("Keys should not restart held ticks")
	}

	m, cmd = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	if cmd == nil {
		t.Fatal("Growing the window should resume ticking")
	}
	if m.held {
		t.Error("Hold should be released")
	}
	m, _ = tick(t, m)
	if got := m.State().Ticks; got != before.Ticks+1 {
		t.Errorf("ticks = %d, expected %d after resuming", got, before.Ticks+1)
	}

	scores, err := store.TopScores(storage.LocalScope, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("No game should be recorded while hidden, got %v", scores)
	}
}
