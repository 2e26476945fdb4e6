// Package tui provides the Bubble Tea integration for Snake.
// It handles the terminal UI loop, input mapping, tick scheduling and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one engine step. Gen identifies the schedule that
// produced it; ticks from an older schedule are dropped.
type TickMsg struct {
	Gen uint64
}

// tickScheduler implements snake.Scheduler on top of tea.Tick.
// Bubble Tea timers cannot be cancelled, so every Reschedule or Stop bumps
// the generation and ticks still in flight are ignored when they arrive.
type tickScheduler struct {
	gen      uint64
	interval time.Duration
	armed    bool // a new tick must be issued after the current update
}

// Reschedule replaces the pending tick with one at the new interval.
func (s *tickScheduler) Reschedule(interval time.Duration) {
	s.gen++
	s.interval = interval
	s.armed = true
}

// Stop cancels the pending tick. Nothing runs again until Reschedule.
func (s *tickScheduler) Stop() {
	s.gen++
	s.interval = 0
	s.armed = false
}

// accept reports whether msg belongs to the current schedule. An accepted
// tick re-arms the scheduler so the loop keeps running until Stop.
func (s *tickScheduler) accept(msg TickMsg) bool {
	if !s.current(msg) {
		return false
	}
	s.armed = true
	return true
}

// current reports whether msg belongs to the current schedule without
// re-arming it.
func (s *tickScheduler) current(msg TickMsg) bool {
	return msg.Gen == s.gen && s.interval > 0
}

// resume re-arms the current schedule after a held tick.
func (s *tickScheduler) resume() {
	if s.interval > 0 {
		s.armed = true
	}
}

// cmd returns the next tick command, or nil when nothing is scheduled.
func (s *tickScheduler) cmd() tea.Cmd {
	if !s.armed {
		return nil
	}
	s.armed = false

	gen := s.gen
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}
