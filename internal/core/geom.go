// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point or direction in normalized world space (x right, y up).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// RotateAround rotates p by angle radians (counter-clockwise) around center.
func RotateAround(p, center Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	d := p.Sub(center)
	return Vec2{
		X: center.X + d.X*cos - d.Y*sin,
		Y: center.Y + d.X*sin + d.Y*cos,
	}
}

// Segment is a finite line segment between two points.
type Segment struct {
	A, B Vec2
}

// Intersects reports whether s crosses o. See SegmentsIntersect.
func (s Segment) Intersects(o Segment) bool {
	return SegmentsIntersect(s.A, s.B, o.A, o.B)
}

// parallelEpsilon is the smallest |denominator| treated as non-parallel.
const parallelEpsilon = 1e-12

// SegmentsIntersect reports whether segment p1-p2 intersects segment p3-p4.
//
// The intersection point is p1 + a*(p2-p1) = p3 + b*(p4-p3); the segments meet
// iff both a and b lie in [0, 1]. Parallel and collinear segments have no
// unique solution and are reported as non-intersecting.
func SegmentsIntersect(p1, p2, p3, p4 Vec2) bool {
	_, ok := SegmentIntersection(p1, p2, p3, p4)
	return ok
}

// SegmentIntersection returns the crossing point of p1-p2 and p3-p4, if any.
func SegmentIntersection(p1, p2, p3, p4 Vec2) (Vec2, bool) {
	denom := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if math.Abs(denom) < parallelEpsilon {
		return Vec2{}, false
	}

	a := ((p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)) / denom
	b := ((p2.X-p1.X)*(p1.Y-p3.Y) - (p2.Y-p1.Y)*(p1.X-p3.X)) / denom

	if a < 0 || a > 1 || b < 0 || b > 1 {
		return Vec2{}, false
	}
	return p1.Add(p2.Sub(p1).Scale(a)), true
}

// Box is an axis-aligned bounding box described by its center and half-extents.
type Box struct {
	Center Vec2
	Half   Vec2
}

// NewBox creates a box centered at (cx, cy) with half-extents (hx, hy).
func NewBox(cx, cy, hx, hy float64) Box {
	return Box{Center: Vec2{X: cx, Y: cy}, Half: Vec2{X: hx, Y: hy}}
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the top-right corner.
func (b Box) Max() Vec2 {
	return b.Center.Add(b.Half)
}

// Overlaps returns true if the two boxes overlap.
// Touching edges count as overlap.
func (b Box) Overlaps(o Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	if bMax.X < oMin.X || oMax.X < bMin.X {
		return false
	}
	if bMax.Y < oMin.Y || oMax.Y < bMin.Y {
		return false
	}
	return true
}

// Edges returns the left, right, top and bottom edges of the box.
func (b Box) Edges() [4]Segment {
	lo, hi := b.Min(), b.Max()
	return [4]Segment{
		{A: Vec2{X: lo.X, Y: lo.Y}, B: Vec2{X: lo.X, Y: hi.Y}}, // left
		{A: Vec2{X: hi.X, Y: lo.Y}, B: Vec2{X: hi.X, Y: hi.Y}}, // right
		{A: Vec2{X: lo.X, Y: hi.Y}, B: Vec2{X: hi.X, Y: hi.Y}}, // top
		{A: Vec2{X: lo.X, Y: lo.Y}, B: Vec2{X: hi.X, Y: lo.Y}}, // bottom
	}
}

// Rect represents an integer cell rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
