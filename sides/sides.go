// Copyright (c) 2025, Anchorkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sides provides flexible representation of the four sides of a
// box, with either a single value for all, or different values for
// subsets, and the display-inset values that constrain overlay placement
// against the window edges.
package sides

import (
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/anchorkit/tooltip/geom"
)

// Sides contains values for each side of a box. The struct field names
// correspond directly to the side values (ie: Top = top side value).
type Sides[T any] struct {

	// top value
	Top T

	// right value
	Right T

	// bottom value
	Bottom T

	// left value
	Left T
}

// Set sets the values of the sides from the given list of 0 to 4 values.
// If 0 values are provided, all sides are set to the zero value of the type.
// If 1 value is provided, all sides are set to that value.
// If 2 values are provided, the top and bottom are set to the first value
// and the right and left are set to the second value.
// If 3 values are provided, the top is set to the first value, the right
// and left are set to the second value, and the bottom is set to the third.
// If 4 values are provided, they are assigned in top, right, bottom, left
// order. This follows the CSS multi-side setting syntax. If more than 4
// values are provided, the behavior is the same as with 4 values, but Set
// also logs a programmer error.
func (s *Sides[T]) Set(vals ...T) *Sides[T] {
	switch len(vals) {
	case 0:
		var zval T
		s.SetAll(zval)
	case 1:
		s.SetAll(vals[0])
	case 2:
		s.SetVertical(vals[0])
		s.SetHorizontal(vals[1])
	case 3:
		s.Top = vals[0]
		s.SetHorizontal(vals[1])
		s.Bottom = vals[2]
	case 4:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
	default:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
		slog.Error("programmer error: sides.Set: expected 0 to 4 values, but got", "numValues", len(vals))
	}
	return s
}

// SetVertical sets the top and bottom sides to the given value.
func (s *Sides[T]) SetVertical(val T) *Sides[T] {
	s.Top = val
	s.Bottom = val
	return s
}

// SetHorizontal sets the right and left sides to the given value.
func (s *Sides[T]) SetHorizontal(val T) *Sides[T] {
	s.Right = val
	s.Left = val
	return s
}

// SetAll sets all of the sides to the given value.
func (s *Sides[T]) SetAll(val T) *Sides[T] {
	s.Top = val
	s.Right = val
	s.Bottom = val
	s.Left = val
	return s
}

// SetTop sets the top side to the given value.
func (s *Sides[T]) SetTop(top T) *Sides[T] {
	s.Top = top
	return s
}

// SetRight sets the right side to the given value.
func (s *Sides[T]) SetRight(right T) *Sides[T] {
	s.Right = right
	return s
}

// SetBottom sets the bottom side to the given value.
func (s *Sides[T]) SetBottom(bottom T) *Sides[T] {
	s.Bottom = bottom
	return s
}

// SetLeft sets the left side to the given value.
func (s *Sides[T]) SetLeft(left T) *Sides[T] {
	s.Left = left
	return s
}

// AreSame returns whether all of the sides are the same.
func AreSame[T comparable](s Sides[T]) bool {
	return s.Right == s.Top && s.Bottom == s.Top && s.Left == s.Top
}

// AreZero returns whether all of the sides are equal to zero.
func AreZero[T comparable](s Sides[T]) bool {
	var zv T
	return s.Top == zv && s.Right == zv && s.Bottom == zv && s.Left == zv
}

// Floats contains float32 values for each side of a box.
type Floats struct {
	Sides[float32]
}

// NewFloats is a helper that creates new side floats
// and calls Set on them with the given values.
func NewFloats(vals ...float32) Floats {
	sides := Sides[float32]{}
	sides.Set(vals...)
	return Floats{sides}
}

// Add adds the side floats to the other side floats
// and returns the result.
func (sf Floats) Add(other Floats) Floats {
	return NewFloats(
		sf.Top+other.Top,
		sf.Right+other.Right,
		sf.Bottom+other.Bottom,
		sf.Left+other.Left,
	)
}

// Sub subtracts the other side floats from
// the side floats and returns the result.
func (sf Floats) Sub(other Floats) Floats {
	return NewFloats(
		sf.Top-other.Top,
		sf.Right-other.Right,
		sf.Bottom-other.Bottom,
		sf.Left-other.Left,
	)
}

// Min returns a new side floats containing the
// minimum values of the two side floats.
func (sf Floats) Min(other Floats) Floats {
	return NewFloats(
		math32.Min(sf.Top, other.Top),
		math32.Min(sf.Right, other.Right),
		math32.Min(sf.Bottom, other.Bottom),
		math32.Min(sf.Left, other.Left),
	)
}

// Max returns a new side floats containing the
// maximum values of the two side floats.
func (sf Floats) Max(other Floats) Floats {
	return NewFloats(
		math32.Max(sf.Top, other.Top),
		math32.Max(sf.Right, other.Right),
		math32.Max(sf.Bottom, other.Bottom),
		math32.Max(sf.Left, other.Left),
	)
}

// Pos returns the position offset caused by the side values (Left, Top).
func (sf Floats) Pos() geom.Point {
	return geom.Pt(sf.Left, sf.Top)
}

// Size returns the total size the side values take up
// (Left + Right, Top + Bottom).
func (sf Floats) Size() geom.Size {
	return geom.Sz(sf.Left+sf.Right, sf.Top+sf.Bottom)
}
