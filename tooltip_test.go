// Copyright (c) 2025, Anchorkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchorkit/tooltip/geom"
	"github.com/anchorkit/tooltip/placement"
	"github.com/anchorkit/tooltip/sides"
)

// fakeMeasurer records measurement requests and lets tests complete
// them explicitly, in any order relative to content-size callbacks.
type fakeMeasurer struct {
	rect    geom.Rect
	err     error
	calls   int
	pending []func(geom.Rect, error)
}

func (m *fakeMeasurer) MeasureAnchor(done func(geom.Rect, error)) {
	m.calls++
	m.pending = append(m.pending, done)
}

// complete fires the oldest outstanding measurement callback.
func (m *fakeMeasurer) complete() {
	done := m.pending[0]
	m.pending = m.pending[1:]
	done(m.rect, m.err)
}

func anchoredTooltip() (*Tooltip, *fakeMeasurer, *TickScheduler, *ResizableWindow) {
	m := &fakeMeasurer{rect: geom.Rct(100, 200, 50, 20)}
	win := NewResizableWindow(geom.Sz(400, 800))
	sched := NewTickScheduler()
	t := New(m, win).SetScheduler(sched)
	return t, m, sched, win
}

func TestShowMeasuresThenComputes(t *testing.T) {
	tt, m, sched, _ := anchoredTooltip()

	tt.SetVisible(true)
	assert.False(t, tt.Ready())
	assert.Equal(t, 0, m.calls) // measurement is deferred one tick

	sched.Flush()
	require.Equal(t, 1, m.calls)
	assert.False(t, tt.Ready())

	m.complete()
	assert.False(t, tt.Ready()) // content size still unknown

	tt.SetContentSize(geom.Sz(80, 40))
	require.True(t, tt.Ready())

	g := tt.Geometry()
	assert.Equal(t, placement.Top, g.Placement)
	assert.Equal(t, geom.Pt(85, 148), g.TooltipOrigin)
	assert.Equal(t, geom.Pt(125, 200), g.AnchorPoint)
	assert.Equal(t, geom.Sz(80, 40), g.ContentSize)
}

func TestContentBeforeAnchorIsStashed(t *testing.T) {
	tt, m, sched, _ := anchoredTooltip()

	tt.SetVisible(true)
	sched.Flush()

	// content lays out before the anchor measurement completes:
	// no premature computation with a zero rect
	tt.SetContentSize(geom.Sz(80, 40))
	assert.False(t, tt.Ready())

	// a second arrival during the wait overwrites the stash
	tt.SetContentSize(geom.Sz(120, 60))
	assert.False(t, tt.Ready())

	m.complete()
	require.True(t, tt.Ready())
	assert.Equal(t, geom.Sz(120, 60), tt.Geometry().ContentSize)
}

func TestChildlessInvertsPlacement(t *testing.T) {
	win := NewResizableWindow(geom.Sz(400, 800))
	sched := NewTickScheduler()
	tt := New(nil, win).SetScheduler(sched)

	assert.Equal(t, placement.Bottom, tt.EffectivePlacement())

	tt.SetVisible(true)
	sched.Flush()
	tt.SetContentSize(geom.Sz(80, 40))
	require.True(t, tt.Ready())

	g := tt.Geometry()
	assert.Equal(t, placement.Bottom, g.Placement)
	// anchored to the top inset: 24 + arrow 8 + spacing 4
	assert.Equal(t, geom.Pt(160, 36), g.TooltipOrigin)

	tt.SetPlacement(placement.Left)
	sched.Flush()
	assert.Equal(t, placement.Right, tt.EffectivePlacement())
	tt.SetPlacement(placement.Center)
	sched.Flush()
	assert.Equal(t, placement.Center, tt.EffectivePlacement())
}

func TestUnmeasurableAnchorFallsBack(t *testing.T) {
	tt, m, sched, _ := anchoredTooltip()
	m.err = errors.New("element unmounted")

	tt.SetVisible(true)
	sched.Flush()
	tt.SetContentSize(geom.Sz(80, 40))
	m.complete()

	require.True(t, tt.Ready())
	// same geometry as a childless overlay with the same request:
	// anchored at the bottom inset edge, content above it
	g := tt.Geometry()
	assert.Equal(t, placement.Top, g.Placement)
	assert.Equal(t, geom.Pt(160, 724), g.TooltipOrigin)
	assert.Equal(t, geom.Pt(200, 776), g.AnchorPoint)
}

func TestZeroRectFallsBack(t *testing.T) {
	tt, m, sched, _ := anchoredTooltip()
	m.rect = geom.Rect{}

	tt.SetVisible(true)
	sched.Flush()
	tt.SetContentSize(geom.Sz(80, 40))
	m.complete()

	require.True(t, tt.Ready())
	g := tt.Geometry()
	// synthesized from insets: anchor rect pinned to the bottom inset edge
	assert.Equal(t, placement.Top, g.Placement)
	assert.Equal(t, geom.Pt(160, 776-40-8-4), g.TooltipOrigin)
}

func TestWindowResizeResetsAndRemeasures(t *testing.T) {
	tt, m, sched, win := anchoredTooltip()

	tt.SetVisible(true)
	sched.Flush()
	m.complete()
	tt.SetContentSize(geom.Sz(80, 40))
	require.True(t, tt.Ready())

	win.Resize(geom.Sz(800, 400))
	assert.False(t, tt.Ready()) // stale geometry is not final

	sched.Flush()
	require.Equal(t, 2, m.calls)
	m.rect = geom.Rct(300, 100, 50, 20)
	m.complete()
	assert.False(t, tt.Ready()) // content must re-lay-out too

	tt.SetContentSize(geom.Sz(80, 40))
	require.True(t, tt.Ready())
	assert.Equal(t, geom.Pt(285, 48), tt.Geometry().TooltipOrigin)
}

func TestInFlightGuardDropsSecondTrigger(t *testing.T) {
	tt, m, sched, _ := anchoredTooltip()

	tt.SetVisible(true)
	sched.Flush()
	require.Equal(t, 1, m.calls)

	// two rapid re-measure triggers while one measurement is in flight
	tt.SetPlacement(placement.Bottom)
	tt.SetSpacing(10)
	sched.FlushAll()
	assert.Equal(t, 1, m.calls) // dropped, not queued

	// the completion reads current values, not a snapshot
	m.complete()
	tt.SetContentSize(geom.Sz(80, 40))
	require.True(t, tt.Ready())
	g := tt.Geometry()
	assert.Equal(t, placement.Bottom, g.Placement)
	// 220 + arrow 8 + spacing 10
	assert.Equal(t, float32(238), g.TooltipOrigin.Y)
}

func TestCoalescedTriggersRunOnePass(t *testing.T) {
	tt, m, sched, _ := anchoredTooltip()

	tt.SetVisible(true)
	sched.Flush()
	m.complete()
	tt.SetContentSize(geom.Sz(80, 40))
	require.True(t, tt.Ready())
	require.Equal(t, 1, m.calls)

	// superseding changes cancel the previously scheduled pass
	tt.SetPlacement(placement.Right)
	tt.SetDisplayInsets(sides.Overrides{Top: sides.Float(40)})
	tt.SetArrowSize(geom.Sz(20, 10))
	assert.Equal(t, 1, sched.Pending())

	sched.Flush()
	assert.Equal(t, 2, m.calls)
}

func TestStaleMeasurementAfterResizeIsDropped(t *testing.T) {
	tt, m, sched, win := anchoredTooltip()

	tt.SetVisible(true)
	sched.Flush()
	require.Equal(t, 1, m.calls)

	// resize invalidates the in-flight measurement
	win.Resize(geom.Sz(800, 400))
	sched.Flush() // scheduled pass is dropped by the in-flight guard
	require.Equal(t, 1, m.calls)

	// the stale completion is discarded and a fresh pass starts
	m.complete()
	require.Equal(t, 2, m.calls)
	assert.False(t, tt.Ready())

	m.complete()
	tt.SetContentSize(geom.Sz(80, 40))
	assert.True(t, tt.Ready())
}

func TestHideKeepsCachesForQuickReshow(t *testing.T) {
	tt, m, sched, _ := anchoredTooltip()

	tt.SetVisible(true)
	sched.Flush()
	m.complete()
	tt.SetContentSize(geom.Sz(80, 40))
	require.True(t, tt.Ready())

	tt.SetVisible(false)
	assert.False(t, tt.Ready())

	// re-show: anchor is re-measured, but the cached content size is
	// reused, so no new layout callback is needed
	tt.SetVisible(true)
	sched.Flush()
	require.Equal(t, 2, m.calls)
	m.complete()
	assert.True(t, tt.Ready())
}

func TestContentChangeWhileReadySchedulesPass(t *testing.T) {
	tt, m, sched, _ := anchoredTooltip()

	tt.SetVisible(true)
	sched.Flush()
	m.complete()
	tt.SetContentSize(geom.Sz(80, 40))
	require.True(t, tt.Ready())

	// identical size is a no-op
	tt.SetContentSize(geom.Sz(80, 40))
	assert.Equal(t, 0, sched.Pending())

	tt.SetContentSize(geom.Sz(120, 60))
	assert.Equal(t, 1, sched.Pending())
	sched.Flush()
	require.Equal(t, 2, m.calls)
	m.complete()
	assert.Equal(t, geom.Sz(120, 60), tt.Geometry().ContentSize)
}

func TestUseInteractionsDefersShow(t *testing.T) {
	tt, m, sched, _ := anchoredTooltip()
	tt.SetUseInteractions(true)

	sched.BeginInteraction()
	tt.SetVisible(true)
	sched.FlushAll()
	assert.Equal(t, 0, m.calls) // held until interactions settle

	sched.EndInteraction()
	sched.Flush()
	assert.Equal(t, 1, m.calls)
}

func TestRenderState(t *testing.T) {
	tt, m, sched, _ := anchoredTooltip()

	tt.SetVisible(true)
	rs := tt.RenderState()
	assert.True(t, rs.Hidden)

	sched.Flush()
	m.complete()
	tt.SetContentSize(geom.Sz(80, 40))
	require.True(t, tt.Ready())

	rs = tt.RenderState()
	assert.False(t, rs.Hidden)
	assert.Equal(t, geom.Pt(85, 148), rs.Origin)
	assert.Equal(t, geom.Sz(80, 40), rs.Size)
	assert.Equal(t, geom.Sz(16, 8), rs.ArrowSize)
	// arrow hangs off the bottom edge, centered on the anchor point
	assert.Equal(t, geom.Pt(125-8, 188), rs.ArrowOrigin)
}

func TestRenderStateSidewaysArrow(t *testing.T) {
	tt, m, sched, _ := anchoredTooltip()
	tt.SetPlacement(placement.Right)
	m.rect = geom.Rct(100, 200, 50, 20)

	tt.SetVisible(true)
	sched.Flush()
	m.complete()
	tt.SetContentSize(geom.Sz(80, 40))
	require.True(t, tt.Ready())

	rs := tt.RenderState()
	assert.Equal(t, geom.Sz(8, 16), rs.ArrowSize) // swapped
	assert.Equal(t, geom.Pt(162-8, 210-8), rs.ArrowOrigin)
}

func TestCloseWithoutHandlerWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	tt, _, _, _ := anchoredTooltip()
	tt.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	tt.Close()
	tt.Close()
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("no close handler")))

	closed := 0
	tt.SetOnClose(func() { closed++ })
	tt.Close()
	assert.Equal(t, 1, closed)
}

func TestDisposeUnsubscribes(t *testing.T) {
	tt, m, sched, win := anchoredTooltip()

	tt.SetVisible(true)
	sched.Flush()
	m.complete()
	tt.SetContentSize(geom.Sz(80, 40))
	require.True(t, tt.Ready())

	tt.Dispose()
	win.Resize(geom.Sz(800, 400))
	sched.FlushAll()
	assert.Equal(t, 1, m.calls) // no further measurement activity
	assert.False(t, tt.Visible())
}

func TestInsetChangeDetection(t *testing.T) {
	tt, _, sched, _ := anchoredTooltip()
	tt.SetVisible(true)
	sched.FlushAll()

	assert.Equal(t, sides.NewFloats(24), tt.DisplayInsets())

	// same merged value: no new pass
	tt.SetDisplayInsets(sides.Overrides{Top: sides.Float(24)})
	assert.Equal(t, 0, sched.Pending())

	tt.SetDisplayInsets(sides.Overrides{Top: sides.Float(40)})
	assert.Equal(t, sides.NewFloats(40, 24, 24, 24), tt.DisplayInsets())
	assert.Equal(t, 1, sched.Pending())
}
