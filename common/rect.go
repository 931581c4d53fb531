package common

import "github.com/jakecoffman/cp"

// Rect is an integer axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCenter builds a w x h rect centered on (cx, cy).
func RectFromCenter(cx, cy, w, h int) Rect {
	r := Rect{W: w, H: h}
	r.SetCenter(cx, cy)
	return r
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

func (r Rect) CenterX() int { return r.X + r.W/2 }
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Center returns the center point as a vector.
func (r Rect) Center() cp.Vector {
	return cp.Vector{X: float64(r.CenterX()), Y: float64(r.CenterY())}
}

func (r *Rect) SetLeft(v int)   { r.X = v }
func (r *Rect) SetRight(v int)  { r.X = v - r.W }
func (r *Rect) SetTop(v int)    { r.Y = v }
func (r *Rect) SetBottom(v int) { r.Y = v - r.H }

func (r *Rect) SetCenterX(v int) { r.X = v - r.W/2 }
func (r *Rect) SetCenterY(v int) { r.Y = v - r.H/2 }

func (r *Rect) SetCenter(x, y int) {
	r.SetCenterX(x)
	r.SetCenterY(y)
}

// Inflate grows (or shrinks, for negative deltas) the rect around its center.
func (r Rect) Inflate(dw, dh int) Rect {
	return Rect{X: r.X - dw/2, Y: r.Y - dh/2, W: r.W + dw, H: r.H + dh}
}

// Empty reports a rect with no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports a strictly positive overlap. Touching edges do not count,
// and empty rects never intersect anything.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
