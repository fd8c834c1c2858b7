package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
)

// FoodKind is the category of a food item. It decides points and side effects.
type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodBonus
	FoodSpeed

	foodKindCount
)

func (k FoodKind) String() string {
	switch k {
	case FoodNormal:
		return "normal"
	case FoodBonus:
		return "bonus"
	case FoodSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// Food is the single active food item on the board.
type Food struct {
	Pos    Point
	Kind   FoodKind
	Points int // Fixed when the food is placed
}

// FoodRule is the spawn weight and score of one kind.
type FoodRule struct {
	Weight float64
	Points int
}

// FoodTable holds the rules for every kind, indexed by FoodKind.
// Selection walks the kinds in declaration order.
type FoodTable [foodKindCount]FoodRule

// DefaultFoodTable returns the 70/20/10 split worth 10/50/25 points.
func DefaultFoodTable() FoodTable {
	return FoodTable{
		FoodNormal: {Weight: 0.7, Points: 10},
		FoodBonus:  {Weight: 0.2, Points: 50},
		FoodSpeed:  {Weight: 0.1, Points: 25},
	}
}

// FoodTableFrom builds a table from configuration.
func FoodTableFrom(cfg config.FoodConfig) FoodTable {
	return FoodTable{
		FoodNormal: {Weight: cfg.Normal.Weight, Points: cfg.Normal.Points},
		FoodBonus:  {Weight: cfg.Bonus.Weight, Points: cfg.Bonus.Points},
		FoodSpeed:  {Weight: cfg.Speed.Weight, Points: cfg.Speed.Points},
	}
}

// Pick maps a uniform draw r in [0,1) to a kind by cumulative thresholds.
// Rounding leftovers at the top of the interval fall back to Normal.
func (t FoodTable) Pick(r float64) FoodKind {
	cumulative := 0.0
	for k := FoodKind(0); k < foodKindCount; k++ {
		cumulative += t[k].Weight
		if r < cumulative {
			return k
		}
	}
	return FoodNormal
}

// Rand is the subset of *rand.Rand used for placement.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Occupancy reports whether a cell is taken.
type Occupancy interface {
	Occupies(p Point) bool
}

// PlaceFood picks a free cell and a weighted kind.
//
// Cells are sampled uniformly until a free one turns up, for at most size²
// attempts. When the board is that crowded the grid is scanned column by
// column and the first free cell wins. A completely full board has no valid
// answer; the caller must have ended the run before asking.
func PlaceFood(rng Rand, occupied Occupancy, size int, table FoodTable) Food {
	pos, found := Point{}, false
	maxAttempts := size * size
	for attempt := 0; attempt < maxAttempts; attempt++ {
		p := Point{X: rng.Intn(size), Y: rng.Intn(size)}
		if !occupied.Occupies(p) {
			pos, found = p, true
			break
		}
	}

	if !found {
	scan:
		for x := 0; x < size; x++ {
			for y := 0; y < size; y++ {
				p := Point{X: x, Y: y}
				if !occupied.Occupies(p) {
					pos = p
					break scan
				}
			}
		}
	}

	kind := table.Pick(rng.Float64())
	return Food{
		Pos:    pos,
		Kind:   kind,
		Points: table[kind].Points,
	}
}
