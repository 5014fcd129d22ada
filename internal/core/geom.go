// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Cell is an integer coordinate on the play grid.
type Cell struct {
	X, Y int
}

// Wrap maps the cell onto a toroidal grid of the given size.
// Coordinates wrap from size-1 to 0 and vice versa.
func (c Cell) Wrap(size int) Cell {
	return Cell{
		X: mod(c.X, size),
		Y: mod(c.Y, size),
	}
}

// Add returns the cell translated by (dx, dy), without wrapping.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// mod is a modulo that is non-negative for any a when n > 0.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
