package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// spawnFood places food on a uniformly chosen free cell.
// When the snake fills the grid there is no food.
func (e *Engine) spawnFood() {
	free := e.freeCells()
	if len(free) == 0 {
		e.hasFood = false
		e.food = core.Cell{}
		e.logger.Debug("grid full, no food spawned", "length", len(e.snake))
		return
	}
	e.food = free[e.rng.Intn(len(free))]
	e.hasFood = true
}

// freeCells returns every grid cell not covered by the snake, row by row.
func (e *Engine) freeCells() []core.Cell {
	taken := make(map[core.Cell]struct{}, len(e.snake))
	for _, seg := range e.snake {
		taken[seg] = struct{}{}
	}

	free := make([]core.Cell, 0, e.cfg.Width*e.cfg.Height-len(taken))
	for y := 1; y <= e.cfg.Height; y++ {
		for x := 1; x <= e.cfg.Width; x++ {
			c := core.Cell{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free
}
