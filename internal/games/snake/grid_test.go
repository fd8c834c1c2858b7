package snake

import "testing"

func TestCellsRowMajor(t *testing.T) {
	cells := Cells(3)
	expected := []Point{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}

	if len(cells) != len(expected) {
		t.Fatalf("Cells(3) returned %d cells, expected %d", len(cells), len(expected))
	}
	for i := range expected {
		if cells[i] != expected[i] {
			t.Errorf("Cells(3)[%d] = %v, expected %v", i, cells[i], expected[i])
		}
	}

	if Cells(0) != nil {
		t.Error("Cells(0) should be empty")
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Point{0, 0}, true},
		{"far corner", Point{19, 19}, true},
		{"x negative", Point{-1, 5}, false},
		{"y negative", Point{5, -1}, false},
		{"x at size", Point{20, 5}, false},
		{"y at size", Point{5, 20}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InBounds(tc.p, 20); got != tc.expected {
				t.Errorf("InBounds(%v, 20) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestDirectionMoveAndOpposite(t *testing.T) {
	origin := Point{5, 5}
	tests := []struct {
		d        Direction
		moved    Point
		opposite Direction
	}{
		{DirUp, Point{5, 4}, DirDown},
		{DirDown, Point{5, 6}, DirUp},
		{DirLeft, Point{4, 5}, DirRight},
		{DirRight, Point{6, 5}, DirLeft},
	}

	for _, tc := range tests {
		if got := origin.Move(tc.d); got != tc.moved {
			t.Errorf("Move(%s) = %v, expected %v", tc.d, got, tc.moved)
		}
		if got := tc.d.Opposite(); got != tc.opposite {
			t.Errorf("%s.Opposite() = %s, expected %s", tc.d, got, tc.opposite)
		}
	}
}
