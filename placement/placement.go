// Copyright (c) 2025, Anchorkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package placement computes where an anchored overlay goes on screen:
// which side of its anchor it sits on, where its arrow points, and how
// its content is shrunk and clamped to stay within the display insets.
package placement

import "fmt"

// Placement is the side of the anchor on which an overlay is placed,
// or Center for an unanchored, centered overlay.
type Placement int32

const (
	// Center positions the overlay centered in the inset-constrained
	// window area, with no arrow.
	Center Placement = iota

	// Top positions the overlay above the anchor, arrow pointing down.
	Top

	// Bottom positions the overlay below the anchor, arrow pointing up.
	Bottom

	// Left positions the overlay to the left of the anchor,
	// arrow pointing right.
	Left

	// Right positions the overlay to the right of the anchor,
	// arrow pointing left.
	Right

	// PlacementN is the number of valid placement values.
	PlacementN
)

var placementNames = map[Placement]string{
	Center: "center",
	Top:    "top",
	Bottom: "bottom",
	Left:   "left",
	Right:  "right",
}

// IsValid returns whether the placement is one of the defined values.
func (p Placement) IsValid() bool {
	return p >= Center && p < PlacementN
}

// IsHorizontal returns whether the placement is on the horizontal
// axis (Left or Right), where the arrow rotates sideways.
func (p Placement) IsHorizontal() bool {
	return p == Left || p == Right
}

func (p Placement) String() string {
	if s, ok := placementNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Placement(%d)", int32(p))
}

// SetString sets the placement from its string representation.
func (p *Placement) SetString(s string) error {
	for v, n := range placementNames {
		if n == s {
			*p = v
			return nil
		}
	}
	return fmt.Errorf("placement: invalid value: %q", s)
}

// Invert returns the opposite placement: top and bottom exchange, left
// and right exchange, and center maps to itself. Inverting twice
// returns the original placement.
//
// It is used when an overlay is configured with no anchor content and a
// directional placement: a directional placement means "relative to an
// anchor on that side", which is meaningless without an anchor, so the
// closest sensible behavior is the inverse relative to the window
// insets (e.g. "top" becomes "sit below the top inset").
func Invert(p Placement) Placement {
	switch p {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	case Right:
		return Left
	}
	return p
}
