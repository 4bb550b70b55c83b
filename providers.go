// Copyright (c) 2025, Anchorkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import "github.com/anchorkit/tooltip/geom"

// AnchorMeasurer asynchronously measures the absolute bounding box of
// the anchor element, in window coordinates. Implementations call done
// exactly once, on the host UI loop, either with the measured rect or
// with a non-nil error if the element cannot be measured (unmounted,
// no measurable ref). A zero rect is treated the same as an error.
type AnchorMeasurer interface {
	MeasureAnchor(done func(geom.Rect, error))
}

// WindowWatcher supplies the current window size on demand and a
// subscription to window-size changes. Subscriptions are scoped to an
// overlay instance's active lifetime: subscribed on creation and
// canceled on [Tooltip.Dispose].
type WindowWatcher interface {

	// WindowSize returns the current window size.
	WindowSize() geom.Size

	// OnResize registers fn to be called with the new size whenever
	// the window size changes. It returns a cancel function that
	// removes the registration.
	OnResize(fn func(geom.Size)) (cancel func())
}

// Deferred is a handle to work scheduled on a [Scheduler], allowing a
// superseding trigger to cancel a scheduled but not-yet-run task.
type Deferred interface {

	// Cancel prevents the task from running if it has not run yet.
	// Canceling a task that already ran is a no-op.
	Cancel()
}

// Scheduler queues work to run on a later tick of the host UI loop.
// Each deferred callback is a discrete later-queued continuation;
// between continuations any other event may interleave.
type Scheduler interface {

	// Defer schedules fn to run one macro-tick later, after the
	// current synchronous update settles.
	Defer(fn func()) Deferred

	// AfterInteractions schedules fn to run once pending interaction
	// and animation work has completed.
	AfterInteractions(fn func())
}

// StaticWindow is a [WindowWatcher] with a fixed size that never
// changes. Useful for hosts without resize events and for tests.
type StaticWindow struct {
	Size geom.Size
}

func (w *StaticWindow) WindowSize() geom.Size {
	return w.Size
}

func (w *StaticWindow) OnResize(fn func(geom.Size)) func() {
	return func() {}
}

// ResizableWindow is a [WindowWatcher] over a mutable window size.
// The host calls [ResizableWindow.Resize] from its UI loop when the
// window or screen orientation changes, and every registered overlay
// re-measures. Not safe for concurrent use; all calls must come from
// the host UI loop.
type ResizableWindow struct {
	size    geom.Size
	nextID  int
	resizes map[int]func(geom.Size)
}

// NewResizableWindow returns a new [ResizableWindow] with the given
// initial size.
func NewResizableWindow(size geom.Size) *ResizableWindow {
	return &ResizableWindow{size: size, resizes: map[int]func(geom.Size){}}
}

func (w *ResizableWindow) WindowSize() geom.Size {
	return w.size
}

func (w *ResizableWindow) OnResize(fn func(geom.Size)) func() {
	id := w.nextID
	w.nextID++
	w.resizes[id] = fn
	return func() {
		delete(w.resizes, id)
	}
}

// Resize sets the window size and notifies all subscribers.
// Setting the same size again still notifies.
func (w *ResizableWindow) Resize(size geom.Size) {
	w.size = size
	for _, fn := range w.resizes {
		fn(size)
	}
}

// ImmediateScheduler is a [Scheduler] that runs everything
// synchronously. It is the default: hosts with a real event loop
// should supply their own scheduler via [Tooltip.SetScheduler] so that
// deferred re-measurement actually runs after layout settles.
type ImmediateScheduler struct{}

func (ImmediateScheduler) Defer(fn func()) Deferred {
	fn()
	return doneTask{}
}

func (ImmediateScheduler) AfterInteractions(fn func()) {
	fn()
}

type doneTask struct{}

func (doneTask) Cancel() {}
