package effects

import "github.com/vovakirdan/tui-snake/internal/core"

// glyph picks a rune from particle size and remaining life.
func glyph(p Particle) rune {
	switch {
	case p.Alpha() < 0.25:
		return '.'
	case p.Size >= 5:
		return 'o'
	case p.Size >= 3.5:
		return '*'
	default:
		return '+'
	}
}

// Draw renders particles over a board whose cells start at board.X, board.Y
// and are cellW columns wide. Particles outside board or over cells that
// already hold a glyph are skipped.
func (s *System) Draw(scr *core.Screen, board core.Rect, cellW int) {
	if cellW < 1 {
		cellW = 1
	}
	for _, p := range s.particles {
		if p.X < 0 || p.Y < 0 {
			continue
		}
		x := board.X + int(p.X*float64(cellW))
		y := board.Y + int(p.Y)
		if !board.Contains(x, y) || scr.Get(x, y) != ' ' {
			continue
		}
		scr.SetColor(x, y, glyph(p), p.Color)
	}
}
