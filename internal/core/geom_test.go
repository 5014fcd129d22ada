package core

import "testing"

func TestCellWrap(t *testing.T) {
	tests := []struct {
		name string
		in   Cell
		size int
		want Cell
	}{
		{"inside", Cell{X: 5, Y: 7}, 20, Cell{X: 5, Y: 7}},
		{"right edge", Cell{X: 20, Y: 10}, 20, Cell{X: 0, Y: 10}},
		{"left edge", Cell{X: -1, Y: 10}, 20, Cell{X: 19, Y: 10}},
		{"top edge", Cell{X: 10, Y: -1}, 20, Cell{X: 10, Y: 19}},
		{"bottom edge", Cell{X: 10, Y: 20}, 20, Cell{X: 10, Y: 0}},
		{"both axes", Cell{X: -1, Y: 20}, 20, Cell{X: 19, Y: 0}},
		{"small grid", Cell{X: 2, Y: -2}, 2, Cell{X: 0, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Wrap(tt.size); got != tt.want {
				t.Errorf("(%d,%d).Wrap(%d) = (%d,%d), want (%d,%d)",
					tt.in.X, tt.in.Y, tt.size, got.X, got.Y, tt.want.X, tt.want.Y)
			}
		})
	}
}

func TestCellWrapAlwaysInRange(t *testing.T) {
	const size = 20
	for x := -size; x <= 2*size; x++ {
		for y := -size; y <= 2*size; y++ {
			got := Cell{X: x, Y: y}.Wrap(size)
			if got.X < 0 || got.X >= size || got.Y < 0 || got.Y >= size {
				t.Fatalf("(%d,%d).Wrap(%d) out of range: (%d,%d)", x, y, size, got.X, got.Y)
			}
		}
	}
}

func TestCellAdd(t *testing.T) {
	c := Cell{X: 3, Y: 4}.Add(-1, 2)
	if c != (Cell{X: 2, Y: 6}) {
		t.Errorf("Add mismatch: got (%d,%d)", c.X, c.Y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}
