// Copyright (c) 2025, Anchorkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sides

// DefaultInset is the minimum margin in pixels that an overlay keeps
// from each window edge unless overridden.
const DefaultInset float32 = 24

// DefaultInsets returns the default display insets,
// [DefaultInset] on every side.
func DefaultInsets() Floats {
	return NewFloats(DefaultInset)
}

// Overrides holds optional caller-supplied display-inset values.
// A nil field means "use the default for that side".
type Overrides struct {
	Top    *float32
	Right  *float32
	Bottom *float32
	Left   *float32
}

// Float is a convenience for taking the address of an inset
// literal when building [Overrides].
func Float(v float32) *float32 {
	return &v
}

// MergeInsets merges the given overrides over the default display
// insets, backfilling any unset field, so the result is always fully
// populated. Negative overrides are treated as zero.
func MergeInsets(o Overrides) Floats {
	in := DefaultInsets()
	if o.Top != nil {
		in.Top = max(*o.Top, 0)
	}
	if o.Right != nil {
		in.Right = max(*o.Right, 0)
	}
	if o.Bottom != nil {
		in.Bottom = max(*o.Bottom, 0)
	}
	if o.Left != nil {
		in.Left = max(*o.Left, 0)
	}
	return in
}
