// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math2 provides the small set of floating-point 2D vector and
// rectangle math used by the navigation and cursor engine. It favors a
// minimal, allocation-free API over a general-purpose linear algebra
// library, since the engine only ever works in screen/world 2D space, but
// leans on math32 (the same single-precision math package the wider
// ecosystem reaches for) rather than hand-rolled float64 conversions.
package math2

import "github.com/chewxy/math32"

// Vector2 is a 2D float32 vector, used for positions, sizes, and deltas
// throughout the engine.
type Vector2 struct {
	X, Y float32
}

// Vec2 is a shorthand for creating a new [Vector2].
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of the two vectors.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the difference v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// MulScalar returns v scaled by s.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// LengthSquared returns the squared length of v; cheaper than [Vector2.Length]
// and sufficient for comparisons.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the Euclidean length of v.
func (v Vector2) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normal returns v scaled to unit length. The zero vector normalizes to itself.
func (v Vector2) Normal() Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.MulScalar(1 / l)
}

// Manhattan returns the L1 (taxicab) norm of v: |X| + |Y|.
func (v Vector2) Manhattan() float32 {
	return absF(v.X) + absF(v.Y)
}

func absF(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// Box2 is an axis-aligned rectangle in 2D space, stored as min/max corners.
type Box2 struct {
	Min, Max Vector2
}

// B2FromPosSize builds a [Box2] from a top-left position and a size.
func B2FromPosSize(pos, size Vector2) Box2 {
	return Box2{Min: pos, Max: pos.Add(size)}
}

// Size returns the width and height of the box.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ContainsPoint returns true if p lies within the box, inclusive of edges.
func (b Box2) ContainsPoint(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
