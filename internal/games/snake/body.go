package snake

// OutcomeKind classifies the result of one movement step.
type OutcomeKind int

const (
	OutcomeMoved OutcomeKind = iota
	OutcomeAte
	OutcomeCrashed
	OutcomeWon
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCrashed:
		return "crashed"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// CrashCause tells what the head ran into.
type CrashCause int

const (
	CrashNone CrashCause = iota
	CrashWall
	CrashSelf
)

func (c CrashCause) String() string {
	switch c {
	case CrashWall:
		return "wall"
	case CrashSelf:
		return "self"
	default:
		return "none"
	}
}

// Outcome is the result of Snake.Step. For OutcomeAte and OutcomeWon, Food
// and Points describe what was eaten; a win always follows a meal.
type Outcome struct {
	Kind   OutcomeKind
	Cause  CrashCause
	Food   FoodKind
	Points int
}

// Snake is the body (head at index 0) plus its heading.
type Snake struct {
	Body    []Point
	Heading Direction
}

// NewSnake creates a single-segment snake.
func NewSnake(start Point, heading Direction) *Snake {
	return &Snake{
		Body:    []Point{start},
		Heading: heading,
	}
}

// Head returns the first segment.
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment covers p.
func (s *Snake) Occupies(p Point) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// ChangeDirection requests a new heading for the next Step. A one-segment
// snake may turn anywhere; a longer one ignores a direct reversal.
// Returns whether the request was accepted.
func (s *Snake) ChangeDirection(d Direction) bool {
	if len(s.Body) > 1 && d == s.Heading.Opposite() {
		return false
	}
	s.Heading = d
	return true
}

// Step advances the snake one cell along its heading on a size×size grid.
//
// Leaving the grid or entering any current segment (the tail included) is a
// crash and leaves the body untouched. Reaching the food grows the snake by
// one; otherwise the tail is dropped. A meal that makes the body cover the
// whole grid is reported as a win.
func (s *Snake) Step(food Food, size int) Outcome {
	newHead := s.Head().Move(s.Heading)

	if !InBounds(newHead, size) {
		return Outcome{Kind: OutcomeCrashed, Cause: CrashWall}
	}
	if s.Occupies(newHead) {
		return Outcome{Kind: OutcomeCrashed, Cause: CrashSelf}
	}

	s.Body = append([]Point{newHead}, s.Body...)

	if newHead != food.Pos {
		s.Body = s.Body[:len(s.Body)-1]
		return Outcome{Kind: OutcomeMoved}
	}

	out := Outcome{Kind: OutcomeAte, Food: food.Kind, Points: food.Points}
	if len(s.Body) == size*size {
		out.Kind = OutcomeWon
	}
	return out
}
