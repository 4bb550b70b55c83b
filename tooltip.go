// Copyright (c) 2025, Anchorkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tooltip coordinates the measurement and placement of a
// floating overlay anchored to an on-screen element. It decides when
// enough geometry is known (anchor rect, content size, window size) to
// compute a final placement via [placement.Resolve], tolerating
// measurements that arrive in any order, and converges on a renderable
// geometry even when the anchor cannot be measured at all.
//
// All methods must be called from the host UI loop; the package does
// no locking of its own.
package tooltip

import (
	"log/slog"

	"github.com/anchorkit/tooltip/geom"
	"github.com/anchorkit/tooltip/placement"
	"github.com/anchorkit/tooltip/sides"
)

// Tooltip owns the placement state for one overlay instance.
// Make configuration choices using Set* methods, which can be chained
// directly after the [New] call.
type Tooltip struct {

	// Placement is the requested side. The effective placement may
	// differ: with no anchor a directional request is inverted, since
	// there is nothing to point at. Use [Tooltip.SetPlacement].
	Placement placement.Placement

	// ArrowSize is the arrow size in vertical orientation.
	ArrowSize geom.Size

	// Spacing is the gap between the anchor rect and the arrow.
	Spacing float32

	measurer        AnchorMeasurer
	window          WindowWatcher
	sched           Scheduler
	logger          *slog.Logger
	insets          sides.Floats
	useInteractions bool
	onClose         func()

	// internal coordinator state, never rendered
	phase           measurePhase
	gen             int  // measurement cycle generation; bumped to invalidate in-flight results
	measuringAnchor bool // in-flight guard: at most one outstanding anchor measurement
	remeasure       Deferred
	cancelResize    func()
	warnedClose     bool

	// externally rendered state
	visible      bool
	finished     bool // measurements finished; gates rendering at the final position
	anchorRect   geom.Rect
	anchorKnown  bool
	contentSize  geom.Size
	contentKnown bool
	geometry     placement.Geometry
}

// measurePhase is the coordinator state within one show cycle.
type measurePhase int32

const (
	// phaseIdle: not measuring; either hidden or waiting for a
	// scheduled measurement pass to start.
	phaseIdle measurePhase = iota

	// phaseMeasuringAnchor: a measurement pass is in progress and the
	// content size for it has not arrived yet.
	phaseMeasuringAnchor

	// phaseWaitingForAnchor: the content size arrived before the
	// anchor measurement completed; it is stashed (last write wins)
	// and computation is deferred until the anchor resolves.
	phaseWaitingForAnchor

	// phaseReady: geometry is computed; the overlay can render at its
	// final position.
	phaseReady
)

func (p measurePhase) String() string {
	switch p {
	case phaseIdle:
		return "Idle"
	case phaseMeasuringAnchor:
		return "MeasuringAnchor"
	case phaseWaitingForAnchor:
		return "WaitingForAnchor"
	case phaseReady:
		return "Ready"
	}
	return "Invalid"
}

// New returns a new [Tooltip] for the given anchor and window. A nil
// measurer means the overlay has no anchor content: directional
// placements are inverted and a rect is synthesized from the insets
// and window size. The tooltip subscribes to window-size changes
// immediately; call [Tooltip.Dispose] on teardown.
func New(measurer AnchorMeasurer, window WindowWatcher) *Tooltip {
	if window == nil {
		window = &StaticWindow{}
	}
	t := &Tooltip{
		Placement: placement.Top,
		ArrowSize: placement.DefaultArrowSize,
		Spacing:   placement.DefaultSpacing,
		measurer:  measurer,
		window:    window,
		sched:     ImmediateScheduler{},
		logger:    slog.Default(),
		insets:    sides.DefaultInsets(),
	}
	t.cancelResize = window.OnResize(t.windowResized)
	return t
}

// SetPlacement sets the requested side. Changing it while visible
// schedules a new measurement pass.
func (t *Tooltip) SetPlacement(p placement.Placement) *Tooltip {
	if !p.IsValid() {
		t.logger.Warn("tooltip: invalid placement requested, keeping current", "placement", p)
		return t
	}
	if p == t.Placement {
		return t
	}
	t.Placement = p
	t.inputsChanged()
	return t
}

// SetArrowSize sets the arrow size, in vertical orientation.
func (t *Tooltip) SetArrowSize(sz geom.Size) *Tooltip {
	if sz == t.ArrowSize {
		return t
	}
	t.ArrowSize = sz
	t.inputsChanged()
	return t
}

// SetSpacing sets the gap between the anchor rect and the arrow.
func (t *Tooltip) SetSpacing(sp float32) *Tooltip {
	if sp == t.Spacing {
		return t
	}
	t.Spacing = sp
	t.inputsChanged()
	return t
}

// SetDisplayInsets merges the given overrides over the default display
// insets. A measurement pass is only scheduled if the merged insets
// actually changed.
func (t *Tooltip) SetDisplayInsets(o sides.Overrides) *Tooltip {
	merged := sides.MergeInsets(o)
	if merged == t.insets {
		return t
	}
	t.insets = merged
	t.inputsChanged()
	return t
}

// SetUseInteractions makes showing wait until pending interaction and
// animation work settles before measuring the anchor.
func (t *Tooltip) SetUseInteractions(use bool) *Tooltip {
	t.useInteractions = use
	return t
}

// SetScheduler sets the deferred-work scheduler.
func (t *Tooltip) SetScheduler(s Scheduler) *Tooltip {
	if s != nil {
		t.sched = s
	}
	return t
}

// SetWindow switches to a different window watcher, moving the resize
// subscription over.
func (t *Tooltip) SetWindow(w WindowWatcher) *Tooltip {
	if w == nil || w == t.window {
		return t
	}
	if t.cancelResize != nil {
		t.cancelResize()
	}
	t.window = w
	t.cancelResize = w.OnResize(t.windowResized)
	t.inputsChanged()
	return t
}

// SetOnClose sets the dismissal handler invoked by [Tooltip.Close].
func (t *Tooltip) SetOnClose(fn func()) *Tooltip {
	t.onClose = fn
	return t
}

// SetLogger sets the logger; the default is [slog.Default].
func (t *Tooltip) SetLogger(l *slog.Logger) *Tooltip {
	if l != nil {
		t.logger = l
	}
	return t
}

// SetVisible shows or hides the overlay. Showing enters the
// measurement pipeline; hiding clears the measurements-finished flag
// so the next show starts clean, but keeps the cached anchor rect and
// content size to avoid flicker on a quick re-show.
func (t *Tooltip) SetVisible(v bool) {
	if v == t.visible {
		return
	}
	t.visible = v
	if !v {
		t.finished = false
		t.phase = phaseIdle
		t.gen++
		return
	}
	if t.useInteractions {
		gen := t.gen
		t.sched.AfterInteractions(func() {
			if t.visible && gen == t.gen {
				t.measureAnchor()
			}
		})
		return
	}
	t.scheduleRemeasure()
}

// Visible returns whether the overlay has been requested visible.
func (t *Tooltip) Visible() bool {
	return t.visible
}

// Ready returns whether measurements are finished and the geometry is
// final. While false, a visible overlay must render visually hidden
// rather than flashing at an unready position.
func (t *Tooltip) Ready() bool {
	return t.finished
}

// Geometry returns the most recently computed geometry. Only valid
// when [Tooltip.Ready] is true.
func (t *Tooltip) Geometry() placement.Geometry {
	return t.geometry
}

// EffectivePlacement returns the placement actually in effect: the
// resolved one once ready, otherwise the requested placement after
// childless inversion.
func (t *Tooltip) EffectivePlacement() placement.Placement {
	if t.finished {
		return t.geometry.Placement
	}
	return t.requestedEffective()
}

// DisplayInsets returns the fully-populated display insets in effect.
func (t *Tooltip) DisplayInsets() sides.Floats {
	return t.insets
}

// SetContentSize records the laid-out size of the overlay content.
// The host layout system calls this once the content has been measured
// in its container. A size arriving before the anchor measurement
// completes is stashed and computation deferred; a second arrival
// during that wait overwrites the stash (last write wins). A size
// change while ready schedules a fresh measurement pass.
func (t *Tooltip) SetContentSize(sz geom.Size) {
	changed := !t.contentKnown || sz != t.contentSize
	t.contentSize = sz
	t.contentKnown = true
	if !t.visible {
		return
	}
	switch t.phase {
	case phaseReady:
		if changed {
			t.scheduleRemeasure()
		}
	case phaseMeasuringAnchor, phaseWaitingForAnchor:
		if t.anchorKnown {
			t.compute()
		} else {
			t.phase = phaseWaitingForAnchor
		}
	case phaseIdle:
		// a pass has not started; the size is picked up when it does
	}
}

// Close invokes the configured dismissal handler. Without one the
// overlay cannot dismiss itself; that is non-fatal but logged once.
func (t *Tooltip) Close() {
	if t.onClose == nil {
		if !t.warnedClose {
			t.warnedClose = true
			t.logger.Warn("tooltip: Close called with no close handler configured")
		}
		return
	}
	t.onClose()
}

// Dispose cancels the window-size subscription and any pending
// deferred work. The tooltip must not be used afterwards.
func (t *Tooltip) Dispose() {
	if t.cancelResize != nil {
		t.cancelResize()
		t.cancelResize = nil
	}
	if t.remeasure != nil {
		t.remeasure.Cancel()
		t.remeasure = nil
	}
	t.visible = false
	t.finished = false
	t.phase = phaseIdle
	t.gen++
}

// requestedEffective returns the requested placement adjusted for the
// childless case: with no anchor a directional request is inverted.
func (t *Tooltip) requestedEffective() placement.Placement {
	if t.measurer == nil {
		return placement.Invert(t.Placement)
	}
	return t.Placement
}

// inputsChanged handles a change to content, side, insets, or window:
// a visible overlay re-enters the measurement pipeline one tick later,
// superseding any pass already scheduled.
func (t *Tooltip) inputsChanged() {
	if !t.visible {
		return
	}
	t.scheduleRemeasure()
}

// scheduleRemeasure schedules a measurement pass one macro-tick later,
// so layout side effects of the triggering change are visible to the
// measurement, canceling any previously scheduled pass. The pass reads
// current values at run time, not a snapshot from schedule time.
func (t *Tooltip) scheduleRemeasure() {
	if t.remeasure != nil {
		t.remeasure.Cancel()
	}
	t.remeasure = t.sched.Defer(func() {
		t.remeasure = nil
		if t.visible {
			t.measureAnchor()
		}
	})
}

// measureAnchor starts an anchor measurement pass. A pass already in
// flight makes this a no-op: the second request is dropped, not
// queued, and the eventual completion triggers whatever pass is needed
// next.
func (t *Tooltip) measureAnchor() {
	if t.measuringAnchor {
		t.logger.Debug("tooltip: anchor measurement already in flight, dropping trigger", "phase", t.phase)
		return
	}
	if t.phase != phaseWaitingForAnchor {
		t.phase = phaseMeasuringAnchor
	}
	if t.measurer == nil {
		t.anchorRect = t.childlessRect()
		t.anchorKnown = true
		if t.contentKnown {
			t.compute()
		}
		return
	}
	t.measuringAnchor = true
	gen := t.gen
	t.measurer.MeasureAnchor(func(r geom.Rect, err error) {
		t.anchorMeasured(gen, r, err)
	})
}

// anchorMeasured is the native measurement completion callback.
func (t *Tooltip) anchorMeasured(gen int, r geom.Rect, err error) {
	t.measuringAnchor = false
	if gen != t.gen {
		// stale cycle (window resized or overlay re-shown mid-measurement);
		// drop the result and start a fresh pass with current inputs
		if t.visible {
			t.measureAnchor()
		}
		return
	}
	if !t.visible {
		return
	}
	if err != nil || r.IsZero() {
		if err != nil {
			t.logger.Debug("tooltip: anchor unmeasurable, using childless placement", "err", err)
		}
		r = t.childlessRect()
	}
	t.anchorRect = r
	t.anchorKnown = true
	if t.contentKnown {
		t.compute()
	}
}

// childlessRect synthesizes an anchor rect from the insets, effective
// placement, and window size alone.
func (t *Tooltip) childlessRect() geom.Rect {
	return placement.ChildlessRect(t.requestedEffective(), t.insets, t.window.WindowSize())
}

// compute resolves the final geometry from the current measurements.
func (t *Tooltip) compute() {
	t.geometry = placement.Resolve(placement.Options{
		AnchorRect:  t.anchorRect,
		ContentSize: t.contentSize,
		WindowSize:  t.window.WindowSize(),
		Insets:      t.insets,
		ArrowSize:   t.ArrowSize,
		Spacing:     t.Spacing,
		Placement:   t.requestedEffective(),
	})
	t.phase = phaseReady
	t.finished = true
	t.logger.Debug("tooltip: measurements finished",
		"placement", t.geometry.Placement, "origin", t.geometry.TooltipOrigin)
}

// windowResized handles a window-size change: the cached anchor rect
// is stale in the new coordinate space, so all measurement state
// resets to empty and a new cycle is scheduled. No stale geometry is
// rendered as final in the meantime.
func (t *Tooltip) windowResized(geom.Size) {
	t.anchorRect = geom.Rect{}
	t.anchorKnown = false
	t.contentSize = geom.Size{}
	t.contentKnown = false
	t.finished = false
	t.phase = phaseIdle
	t.gen++
	if t.visible {
		t.scheduleRemeasure()
	}
}
