package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 {
		t.Errorf("Width() = %d, want 10", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height() = %d, want 5", s.Height())
	}

	// All cells should be spaces
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if got := s.Get(x, y); got != ' ' {
				t.Errorf("Get(%d, %d) = %q, want ' '", x, y, got)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if got := s.Get(5, 5); got != 'X' {
		t.Errorf("Get(5, 5) = %q, want 'X'", got)
	}

	// Out of bounds should be ignored/return space
	s.Set(-1, 0, 'Y')
	s.Set(100, 0, 'Y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1, 0) = %q, want ' '", got)
	}
	if got := s.Get(100, 0); got != ' ' {
		t.Errorf("Get(100, 0) = %q, want ' '", got)
	}
}

func TestScreenSetCellKeepsColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, Cell{Rune: '#', Color: ColorGreen})

	c := s.GetCell(1, 1)
	if c.Rune != '#' || c.Color != ColorGreen {
		t.Errorf("GetCell(1, 1) = %+v, want '#' green", c)
	}

	s.Set(1, 1, '*')
	if c := s.GetCell(1, 1); c.Color != ColorGreen {
		t.Errorf("Set should keep color, got %v", c.Color)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, Cell{Rune: 'X', Color: ColorRed})
	s.Clear()

	if got := s.GetCell(2, 2); got != blankCell {
		t.Errorf("after Clear, GetCell(2, 2) = %+v, want blank", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorWhite)

	if got := s.Row(1); got != "  Hello             " {
		t.Errorf("Row(1) = %q", got)
	}
	if c := s.GetCell(2, 1); c.Color != ColorWhite {
		t.Errorf("text color = %v, want white", c.Color)
	}

	// Clipped at the right edge
	s.DrawText(17, 2, "Hello", ColorWhite)
	if got := s.Row(2); got != strings.Repeat(" ", 17)+"Hel" {
		t.Errorf("Row(2) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc", ColorDefault)

	if got := s.Row(1); got != "    abc    " {
		t.Errorf("Row(1) = %q, want centered", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X')
	s.Set(4, 4, 'Y')

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 3x3", s.Width(), s.Height())
	}
	if got := s.Get(1, 1); got != 'X' {
		t.Errorf("content should survive resize, got %q", got)
	}

	s.Resize(6, 6)
	if got := s.Get(4, 4); got != ' ' {
		t.Errorf("cropped content should not return, got %q", got)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(9); got != "    " {
		t.Errorf("Row(9) = %q, want blanks", got)
	}
}

func TestScreenProjection(t *testing.T) {
	// 120x60 world onto 12x6 cells: ten units per cell.
	s := NewScreen(12, 6)
	s.SetWorld(120, 60)

	if w, h := s.Size(); w != 120 || h != 60 {
		t.Fatalf("Size() = %vx%v, want 120x60", w, h)
	}

	paint := Paint{Rune: '#', Color: ColorRed}
	s.FillRect(NewRect(20, 10, 30, 20), paint)

	for y := 0; y < 6; y++ {
		for x := 0; x < 12; x++ {
			inside := x >= 2 && x < 5 && y >= 1 && y < 3
			got := s.Get(x, y) == '#'
			if got != inside {
				t.Errorf("cell (%d, %d) filled = %v, want %v", x, y, got, inside)
			}
		}
	}
}

func TestScreenFillRectMinimumCell(t *testing.T) {
	s := NewScreen(12, 6)
	s.SetWorld(1200, 600)

	// Smaller than a single cell, still visible
	s.FillRect(NewRect(205, 105, 5, 5), Paint{Rune: '*'})
	if got := s.Get(2, 1); got != '*' {
		t.Errorf("tiny rect not drawn, Get(2, 1) = %q", got)
	}

	// Zero-sized rect draws nothing
	s.Clear()
	s.FillRect(NewRect(300, 300, 0, 50), Paint{Rune: '*'})
	if strings.ContainsRune(s.String(), '*') {
		t.Error("zero-width rect should not be drawn")
	}
}

func TestScreenFillRectClipped(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(-5, -5, 7, 7), Paint{Rune: '#'})

	if got := s.Get(0, 0); got != '#' {
		t.Errorf("Get(0, 0) = %q, want '#'", got)
	}
	if got := s.Get(2, 2); got != ' ' {
		t.Errorf("Get(2, 2) = %q, want ' '", got)
	}
}

func TestScreenDrawLabel(t *testing.T) {
	s := NewScreen(40, 10)
	s.SetWorld(400, 100)

	s.DrawLabel(50, 20, "Score: 3", ColorWhite)
	if got := s.Row(2)[5:13]; got != "Score: 3" {
		t.Errorf("label at row 2 = %q", got)
	}

	s.DrawLabelCentered(50, "Hi", ColorRed)
	if got := s.Row(5); strings.TrimSpace(got) != "Hi" || strings.Index(got, "Hi") != 19 {
		t.Errorf("centered label row = %q", got)
	}
}

func TestSetWorldIgnoresNonPositive(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetWorld(0, -1)
	if w, h := s.Size(); w != 10 || h != 10 {
		t.Errorf("Size() = %vx%v, want 10x10", w, h)
	}
}

func TestScreenDrawLabelRight(t *testing.T) {
	s := NewScreen(20, 2)
	s.SetWorld(200, 20)

	s.DrawLabelRight(150, 0, "abc", ColorWhite)
	if got := s.Row(0); got != "            abc     " {
		t.Errorf("Row(0) = %q", got)
	}
}
