package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board glyphs.
const (
	GlyphHead = '@'
	GlyphBody = 'o'
	GlyphFood = '*'
)

// hudHeight is the number of screen rows above the board.
const hudHeight = 2

// Hints holds the key names shown in on-screen prompts.
type Hints struct {
	Start string // e.g. "Space/Enter"
	Steer string // e.g. "Arrows/WASD"
}

// DefaultHints matches the default key bindings. Draw falls back to them
// when hints are left empty.
func DefaultHints() Hints {
	return Hints{Start: "Space/Enter", Steer: "Arrows/WASD"}
}

// RequiredSize returns the smallest screen that fits the board, the HUD and
// the footer line.
func RequiredSize(width, height int) (int, int) {
	return width + 2, height + 2 + hudHeight + 1
}

// Fits reports whether a width×height board can be drawn on dst.
func Fits(dst *core.Screen, width, height int) bool {
	needW, needH := RequiredSize(width, height)
	return dst.Width() >= needW && dst.Height() >= needH
}

// Draw renders a snapshot into dst: HUD, bordered board, snake, food,
// a footer prompt and the game-over overlay.
func Draw(dst *core.Screen, st State, hints Hints) {
	if hints.Start == "" || hints.Steer == "" {
		hints = DefaultHints()
	}

	dst.Clear()
	drawHUD(dst, st)

	needW, needH := RequiredSize(st.Width, st.Height)
	if !Fits(dst, st.Width, st.Height) {
		drawOverlay(dst, "Window too small", fmt.Sprintf("Resize to at least %dx%d", needW, needH), core.ColorYellow)
		return
	}

	board := core.NewRect((dst.Width()-needW)/2, hudHeight, st.Width+2, st.Height+2)
	dst.DrawBox(board, core.ColorGray)

	// Grid cells are 1-indexed, so they land just inside the border
	at := func(c core.Cell) (int, int) {
		return board.X + c.X, board.Y + c.Y
	}

	if st.HasFood {
		x, y := at(st.Food)
		dst.SetColored(x, y, GlyphFood, core.ColorBrightRed)
	}

	// Body first so the head is never hidden
	for i := len(st.Snake) - 1; i >= 0; i-- {
		x, y := at(st.Snake[i])
		if i == 0 {
			dst.SetColored(x, y, GlyphHead, core.ColorBrightGreen)
		} else {
			dst.SetColored(x, y, GlyphBody, core.ColorGreen)
		}
	}

	dst.DrawTextCentered(board.Bottom(), footer(st, hints), core.ColorGray)

	if st.OverlayVisible {
		drawOverlay(dst,
			fmt.Sprintf("Game Over! Your score: %d", st.Score),
			fmt.Sprintf("%s: play again   Esc: close", hints.Start),
			core.ColorBrightRed)
	}
}

func footer(st State, hints Hints) string {
	switch {
	case st.Paused && st.GameOver:
		return fmt.Sprintf("Press %s to restart", hints.Start)
	case st.Paused:
		return fmt.Sprintf("Press %s to start", hints.Start)
	default:
		return fmt.Sprintf("%s to steer", hints.Steer)
	}
}

// drawHUD draws the score line and a separator.
func drawHUD(dst *core.Screen, st State) {
	hud := fmt.Sprintf(" SNAKE  Score: %d  High Score: %d  Tick: %dms",
		st.Score, st.HighScore, st.Interval.Milliseconds())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightYellow)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string, c core.Color) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	cx, cy := core.NewRect(0, 0, dst.Width(), dst.Height()).Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, line1, c)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
