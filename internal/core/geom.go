// Package core provides fundamental types and utilities for the cave game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units, used for positions and velocities.
type Vec2 struct {
	X, Y float64
}

// V creates a vector.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
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

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Normalize returns the unit vector in the direction of v.
// ok is false for a zero-length vector, which has no direction.
func (v Vec2) Normalize() (unit Vec2, ok bool) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// RectF is an axis-aligned box in world units.
// X, Y is the top-left corner; W and H are positive.
type RectF struct {
	X, Y float64
	W, H float64
}

// R creates a world rectangle.
func R(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// RectFromMidBottom builds a w x h box whose bottom edge is centered on p.
func RectFromMidBottom(p Vec2, w, h float64) RectF {
	return RectF{X: p.X - w/2, Y: p.Y - h, W: w, H: h}
}

// RectFromCenter builds a w x h box centered on p.
func RectFromCenter(p Vec2, w, h float64) RectF {
	return RectF{X: p.X - w/2, Y: p.Y - h/2, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r RectF) Left() float64 { return r.X }

// Top returns the y-coordinate of the top edge.
func (r RectF) Top() float64 { return r.Y }

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r RectF) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r RectF) CenterY() float64 { return r.Y + r.H/2 }

// Center returns the center point.
func (r RectF) Center() Vec2 { return Vec2{X: r.CenterX(), Y: r.CenterY()} }

// MidBottom returns the center of the bottom edge.
func (r RectF) MidBottom() Vec2 { return Vec2{X: r.CenterX(), Y: r.Bottom()} }

// Move returns the rectangle translated by (dx, dy).
func (r RectF) Move(dx, dy float64) RectF {
	r.X += dx
	r.Y += dy
	return r
}

// Inflate returns the rectangle scaled by ratio about its center.
// A ratio of 0.8 yields the smaller hitbox used for harmful contact.
func (r RectF) Inflate(ratio float64) RectF {
	w := r.W * ratio
	h := r.H * ratio
	return RectF{X: r.CenterX() - w/2, Y: r.CenterY() - h/2, W: w, H: h}
}

// Intersects returns true if the boxes overlap with positive area.
// Touching edges do not count as overlap.
func (r RectF) Intersects(o RectF) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Rect represents an axis-aligned box in screen cells.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
