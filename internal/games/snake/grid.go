// Package snake implements the Snake simulation: the grid model, weighted
// food placement, the snake/collision step and the game state machine that
// ties them to timers, cues and persistence.
package snake

// Point represents a cell on the grid. Points compare by value.
type Point struct {
	X, Y int
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the cell offset of one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Move returns the neighbouring point one step along d.
func (p Point) Move(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// InBounds reports whether p lies on a size×size grid.
func InBounds(p Point, size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Cells enumerates every cell of a size×size grid in row-major order
// (row outer, column inner), the order a renderer lays the board out in.
func Cells(size int) []Point {
	if size <= 0 {
		return nil
	}
	cells := make([]Point, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}
