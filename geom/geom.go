// Copyright (c) 2025, Anchorkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides float32 point, size, and rect value types for
// overlay placement, in absolute window coordinate space.
package geom

import (
	"image"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/fixed"
)

// Point is a 2D point with X and Y float32 components,
// in window coordinates.
type Point struct {
	X float32
	Y float32
}

// Pt returns a new [Point] with the given x and y components.
func Pt(x, y float32) Point {
	return Point{x, y}
}

// PointFromImage returns a new [Point] from the given [image.Point].
func PointFromImage(p image.Point) Point {
	return Point{float32(p.X), float32(p.Y)}
}

// PointFromFixed returns a new [Point] from the given [fixed.Point26_6].
func PointFromFixed(p fixed.Point26_6) Point {
	return Point{float32(p.X) / 64, float32(p.Y) / 64}
}

// Add returns the sum of this point and the other point.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns this point minus the other point.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Clamp returns this point constrained component-wise
// to the range [min, max].
func (p Point) Clamp(min, max Point) Point {
	return Point{Clamp(p.X, min.X, max.X), Clamp(p.Y, min.Y, max.Y)}
}

// IsZero returns whether both components are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// ToImage returns the [image.Point] version of this point,
// rounding each component to the nearest whole number.
func (p Point) ToImage() image.Point {
	return image.Pt(int(math32.Round(p.X)), int(math32.Round(p.Y)))
}

// ToFixed returns the [fixed.Point26_6] version of this point.
func (p Point) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

// Size is a 2D extent with Width and Height float32 components.
type Size struct {
	Width  float32
	Height float32
}

// Sz returns a new [Size] with the given width and height.
func Sz(w, h float32) Size {
	return Size{w, h}
}

// SizeFromImage returns a new [Size] from the given [image.Point]
// treated as a width, height pair.
func SizeFromImage(p image.Point) Size {
	return Size{float32(p.X), float32(p.Y)}
}

// Swap returns this size with the width and height exchanged.
// Used for arrows that rotate to point sideways.
func (s Size) Swap() Size {
	return Size{s.Height, s.Width}
}

// Min returns the component-wise minimum of this size and the other size.
func (s Size) Min(o Size) Size {
	return Size{math32.Min(s.Width, o.Width), math32.Min(s.Height, o.Height)}
}

// IsZero returns whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// ToImage returns the [image.Point] version of this size, rounded.
func (s Size) ToImage() image.Point {
	return image.Pt(int(math32.Round(s.Width)), int(math32.Round(s.Height)))
}

// Rect is an absolute on-screen bounding box, given by the position
// of its top-left corner and its size.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Rct returns a new [Rect] with the given position and size.
func Rct(x, y, w, h float32) Rect {
	return Rect{x, y, w, h}
}

// RectFromImage returns a new [Rect] from the given [image.Rectangle].
func RectFromImage(r image.Rectangle) Rect {
	return Rect{float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy())}
}

// RectFrom returns a new [Rect] with the given origin point and size.
func RectFrom(p Point, s Size) Rect {
	return Rect{p.X, p.Y, s.Width, s.Height}
}

// Pos returns the position of the top-left corner of the rect.
func (r Rect) Pos() Point {
	return Point{r.X, r.Y}
}

// Size returns the size of the rect.
func (r Rect) Size() Size {
	return Size{r.Width, r.Height}
}

// Center returns the center point of the rect.
func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// MaxX returns the x coordinate of the right edge.
func (r Rect) MaxX() float32 {
	return r.X + r.Width
}

// MaxY returns the y coordinate of the bottom edge.
func (r Rect) MaxY() float32 {
	return r.Y + r.Height
}

// IsZero returns whether all fields are zero, which is the state of a
// rect that has not been measured.
func (r Rect) IsZero() bool {
	return r.X == 0 && r.Y == 0 && r.Width == 0 && r.Height == 0
}

// ToImage returns the [image.Rectangle] version of this rect, using
// floor for the minimum and ceil for the maximum, so that the result
// always covers the source rect.
func (r Rect) ToImage() image.Rectangle {
	return image.Rect(int(math32.Floor(r.X)), int(math32.Floor(r.Y)),
		int(math32.Ceil(r.MaxX())), int(math32.Ceil(r.MaxY())))
}

// Clamp returns v constrained to the range [lo, hi].
// If hi < lo, lo wins: a box that does not fit is pinned
// to the low edge.
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(v, hi))
}
