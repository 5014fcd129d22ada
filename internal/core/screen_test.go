package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3,2) = %q, want 'X'", got)
	}

	s.SetColored(4, 2, 'Y', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'Y' || cell.Color != ColorRed {
		t.Errorf("GetCell(4,2) = %+v, want Y/red", cell)
	}
}

func TestScreenOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(10, 5)

	// Must not panic.
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(0, 5, 'X')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Out-of-bounds Get should return space, got %q", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColored(1, 1, 'Z', ColorGreen)

	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear should reset cells, got %+v", cell)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	want := "abc\nde "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'K')

	s.Resize(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Errorf("Resize dims wrong: %dx%d", s.Width(), s.Height())
	}
	if got := s.Get(1, 1); got != 'K' {
		t.Errorf("Content lost on resize: got %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(0, 0, 6, 4)

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("Box corners wrong")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("Box edges wrong")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab")

	row := s.Row(0)
	if !strings.Contains(row, "ab") {
		t.Errorf("Centered text missing: %q", row)
	}
	if strings.Index(row, "ab") != 4 {
		t.Errorf("Text not centered: %q", row)
	}
}
