// Copyright (c) 2025, Anchorkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placement

import (
	"github.com/chewxy/math32"

	"github.com/anchorkit/tooltip/geom"
	"github.com/anchorkit/tooltip/sides"
)

var (
	// DefaultArrowSize is the default size of the overlay arrow, in its
	// vertical orientation (pointing up or down). For Left and Right
	// placements the dimensions are swapped.
	DefaultArrowSize = geom.Sz(16, 8)
)

// DefaultSpacing is the default gap in pixels between the anchor rect
// and the near edge of the arrow.
const DefaultSpacing float32 = 4

// Options are the inputs to [Resolve]. All coordinates are in the same
// absolute window coordinate space as the measured anchor rect.
type Options struct {

	// AnchorRect is the absolute bounding box of the anchor element.
	AnchorRect geom.Rect

	// ContentSize is the laid-out size of the overlay content.
	ContentSize geom.Size

	// WindowSize is the current window size.
	WindowSize geom.Size

	// Insets are the fully-populated display insets.
	Insets sides.Floats

	// ArrowSize is the arrow size in vertical orientation.
	ArrowSize geom.Size

	// Spacing is the gap between the anchor rect and the arrow.
	Spacing float32

	// Placement is the requested side.
	Placement Placement
}

// Geometry is the resolved placement of an overlay.
type Geometry struct {

	// TooltipOrigin is the top-left corner of the overlay content box.
	TooltipOrigin geom.Point

	// AnchorPoint is the point on the anchor edge that the arrow
	// points at (the content center for Center placement).
	AnchorPoint geom.Point

	// Placement is the effective placement.
	Placement Placement

	// ContentSize is the adjusted content size, shrunk if needed to fit
	// the inset-constrained window space. Never larger than the
	// requested content size on either axis.
	ContentSize geom.Size
}

// Resolve computes the final overlay geometry for the given inputs.
// It is a pure function: identical inputs give identical results.
// The resolved origin and content size always stay within the
// inset-constrained window box, clamped independently on each axis.
func Resolve(o Options) Geometry {
	minX := o.Insets.Left
	minY := o.Insets.Top
	maxX := o.WindowSize.Width - o.Insets.Right
	maxY := o.WindowSize.Height - o.Insets.Bottom

	avail := geom.Sz(math32.Max(maxX-minX, 0), math32.Max(maxY-minY, 0))
	adj := o.ContentSize.Min(avail)

	g := Geometry{Placement: o.Placement, ContentSize: adj}

	if o.Placement == Center {
		g.TooltipOrigin = geom.Pt(
			minX+(avail.Width-adj.Width)/2,
			minY+(avail.Height-adj.Height)/2,
		)
		g.AnchorPoint = geom.Pt(
			g.TooltipOrigin.X+adj.Width/2,
			g.TooltipOrigin.Y+adj.Height/2,
		)
		return g
	}

	arrow := o.ArrowSize
	if o.Placement.IsHorizontal() {
		arrow = arrow.Swap()
	}

	ctr := o.AnchorRect.Center()

	var origin, anchor geom.Point
	switch o.Placement {
	case Top:
		origin = geom.Pt(
			ctr.X-adj.Width/2,
			o.AnchorRect.Y-adj.Height-arrow.Height-o.Spacing,
		)
		anchor = geom.Pt(geom.Clamp(ctr.X, minX, maxX), o.AnchorRect.Y)
	case Bottom:
		origin = geom.Pt(
			ctr.X-adj.Width/2,
			o.AnchorRect.MaxY()+arrow.Height+o.Spacing,
		)
		anchor = geom.Pt(geom.Clamp(ctr.X, minX, maxX), o.AnchorRect.MaxY())
	case Left:
		origin = geom.Pt(
			o.AnchorRect.X-adj.Width-arrow.Width-o.Spacing,
			ctr.Y-adj.Height/2,
		)
		anchor = geom.Pt(o.AnchorRect.X, geom.Clamp(ctr.Y, minY, maxY))
	case Right:
		origin = geom.Pt(
			o.AnchorRect.MaxX()+arrow.Width+o.Spacing,
			ctr.Y-adj.Height/2,
		)
		anchor = geom.Pt(o.AnchorRect.MaxX(), geom.Clamp(ctr.Y, minY, maxY))
	}

	g.TooltipOrigin = origin.Clamp(
		geom.Pt(minX, minY),
		geom.Pt(maxX-adj.Width, maxY-adj.Height),
	)
	g.AnchorPoint = anchor
	return g
}

// ChildlessRect synthesizes an anchor rect purely from the display
// insets, the window size, and the effective placement, for overlays
// that have no anchor element at all. The effective placement is
// expected to already be inverted per [Invert]: Bottom anchors the
// overlay to the top inset edge, Top to the bottom inset edge, and so
// on; Center anchors to the window center.
func ChildlessRect(p Placement, insets sides.Floats, win geom.Size) geom.Rect {
	switch p {
	case Bottom:
		return geom.Rct(win.Width/2, insets.Top, 0, 0)
	case Top:
		return geom.Rct(win.Width/2, win.Height-insets.Bottom, 0, 0)
	case Right:
		return geom.Rct(insets.Left, win.Height/2, 0, 0)
	case Left:
		return geom.Rct(win.Width-insets.Right, win.Height/2, 0, 0)
	}
	return geom.Rct(win.Width/2, win.Height/2, 0, 0)
}
