package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColor(3, 2, 'O', ColorGreen)
	cell := s.GetCell(3, 2)
	if cell.Rune != 'O' || cell.Color != ColorGreen {
		t.Errorf("GetCell(3, 2) = %+v, expected green 'O'", cell)
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
}

func TestScreenWideRunes(t *testing.T) {
	s := NewScreen(10, 1)

	used := s.DrawText(0, 0, "分数", ColorDefault)
	if used != 4 {
		t.Errorf("DrawText width = %d, expected 4", used)
	}
	if !IsContinuation(s.GetCell(1, 0)) {
		t.Error("Second column of a wide rune should be a continuation cell")
	}
	if got := strings.TrimRight(s.Row(0), " "); got != "分数" {
		t.Errorf("Row(0) = %q, expected %q", got, "分数")
	}

	// Narrow rune over the continuation column blanks the wide rune
	s.Set(1, 0, 'x')
	if s.Get(0, 0) != ' ' {
		t.Errorf("Overwritten wide rune should be blanked, got %q", s.Get(0, 0))
	}
}

func TestScreenWideRuneAtEdge(t *testing.T) {
	s := NewScreen(3, 1)
	s.SetColor(2, 0, '中', ColorDefault)

	if s.Get(2, 0) != ' ' {
		t.Error("Wide rune that does not fit should be dropped")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorGray)

	expected := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, '#')
	s.Resize(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Errorf("Resize() dims = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear the buffer")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextCentered(0, "a", ColorDefault)
	s.Set(2, 1, 'z')

	if got := s.String(); got != " a \n  z" {
		t.Errorf("String() = %q", got)
	}
}

func TestDrawTextCenteredOverflow(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawTextCentered(0, "scoreboard", ColorDefault)

	if got := s.Row(0); got != "scor" {
		t.Errorf("Row(0) = %q, expected the text to start at the left edge", got)
	}
}
