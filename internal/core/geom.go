// Package core provides the board primitives shared by the snake engine,
// the SVG renderer and the service layer. It has no external dependencies
// to keep game logic pure and testable.
package core

// Point is a cell coordinate on the board.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of p and o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Size is a board size in cells.
type Size struct {
	W, H int
}

// Contains returns true if p lies inside [0, W) x [0, H).
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.W && p.Y >= 0 && p.Y < s.H
}

// Cells returns the total number of cells on the board.
func (s Size) Cells() int {
	return s.W * s.H
}

// Scale returns the size in canvas units for the given cell size.
func (s Size) Scale(cell int) (int, int) {
	return s.W * cell, s.H * cell
}
