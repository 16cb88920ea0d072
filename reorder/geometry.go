package reorder

import "fmt"

// RowIndex identifies a row by section and position within the section. Two
// indexes are only comparable when they share a section.
type RowIndex struct {
	Section int
	Row     int
}

// Valid reports whether both components are non-negative.
func (i RowIndex) Valid() bool {
	return i.Section >= 0 && i.Row >= 0
}

func (i RowIndex) String() string {
	return fmt.Sprintf("(%d,%d)", i.Section, i.Row)
}

// Point is a pointer position in host units.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in host units. Y grows downwards.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Top returns the smallest y coordinate of the rectangle.
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the y coordinate just past the rectangle.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside the rectangle. The top and left
// edges are inclusive, the bottom and right edges exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// InsetVertical shrinks the rectangle by dy on the top and bottom edges. The
// height never drops below zero.
func (r Rect) InsetVertical(dy float64) Rect {
	r.Y += dy
	r.Height -= 2 * dy
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

func lerpPoint(from, to Point, t float64) Point {
	return Point{X: lerp(from.X, to.X, t), Y: lerp(from.Y, to.Y, t)}
}
