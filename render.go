// Copyright (c) 2025, Anchorkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"github.com/anchorkit/tooltip/geom"
	"github.com/anchorkit/tooltip/placement"
)

// RenderState is everything a style or appearance generator needs to
// position the overlay visually. While Hidden is true the overlay must
// be rendered invisible (not at the unready origin-only position).
type RenderState struct {

	// Hidden reports that measurements have not finished for the
	// current cycle and the overlay must not be shown at a position.
	Hidden bool

	// Origin is the top-left corner of the content box.
	Origin geom.Point

	// Size is the adjusted content size.
	Size geom.Size

	// Placement is the effective placement.
	Placement placement.Placement

	// AnchorPoint is the point on the anchor that the arrow points at.
	AnchorPoint geom.Point

	// ArrowOrigin is the top-left corner of the arrow's bounding box.
	ArrowOrigin geom.Point

	// ArrowSize is the arrow size as rendered: the configured size for
	// Top and Bottom, swapped for Left and Right, zero for Center.
	ArrowSize geom.Size
}

// RenderState returns the current visual positioning state.
func (t *Tooltip) RenderState() RenderState {
	if !t.finished {
		return RenderState{Hidden: true, Placement: t.requestedEffective()}
	}
	g := t.geometry
	rs := RenderState{
		Origin:      g.TooltipOrigin,
		Size:        g.ContentSize,
		Placement:   g.Placement,
		AnchorPoint: g.AnchorPoint,
	}
	switch g.Placement {
	case placement.Top:
		rs.ArrowSize = t.ArrowSize
		rs.ArrowOrigin = geom.Pt(g.AnchorPoint.X-rs.ArrowSize.Width/2, g.TooltipOrigin.Y+g.ContentSize.Height)
	case placement.Bottom:
		rs.ArrowSize = t.ArrowSize
		rs.ArrowOrigin = geom.Pt(g.AnchorPoint.X-rs.ArrowSize.Width/2, g.TooltipOrigin.Y-rs.ArrowSize.Height)
	case placement.Left:
		rs.ArrowSize = t.ArrowSize.Swap()
		rs.ArrowOrigin = geom.Pt(g.TooltipOrigin.X+g.ContentSize.Width, g.AnchorPoint.Y-rs.ArrowSize.Height/2)
	case placement.Right:
		rs.ArrowSize = t.ArrowSize.Swap()
		rs.ArrowOrigin = geom.Pt(g.TooltipOrigin.X-rs.ArrowSize.Width, g.AnchorPoint.Y-rs.ArrowSize.Height/2)
	}
	return rs
}
