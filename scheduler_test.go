// Copyright (c) 2025, Anchorkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anchorkit/tooltip/geom"
)

func TestTickSchedulerRunsInOrder(t *testing.T) {
	s := NewTickScheduler()
	var got []int
	s.Defer(func() { got = append(got, 1) })
	s.Defer(func() { got = append(got, 2) })

	assert.Equal(t, 2, s.Pending())
	assert.Equal(t, 2, s.Flush())
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 0, s.Pending())
}

func TestTickSchedulerDefersNestedTasks(t *testing.T) {
	s := NewTickScheduler()
	ran := 0
	s.Defer(func() {
		s.Defer(func() { ran += 10 })
		ran++
	})

	// a task queued during a flush is a later-tick continuation
	assert.Equal(t, 1, s.Flush())
	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, s.Flush())
	assert.Equal(t, 11, ran)
}

func TestTickSchedulerCancel(t *testing.T) {
	s := NewTickScheduler()
	ran := false
	d := s.Defer(func() { ran = true })
	d.Cancel()

	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, 0, s.Flush())
	assert.False(t, ran)

	// canceling after the run is a no-op
	d = s.Defer(func() { ran = true })
	s.Flush()
	d.Cancel()
	assert.True(t, ran)
}

func TestTickSchedulerInteractions(t *testing.T) {
	s := NewTickScheduler()
	ran := false

	s.BeginInteraction()
	s.BeginInteraction()
	s.AfterInteractions(func() { ran = true })
	s.Flush()
	assert.False(t, ran)

	s.EndInteraction()
	s.Flush()
	assert.False(t, ran) // one interaction still pending

	s.EndInteraction()
	s.Flush()
	assert.True(t, ran)

	// with no interactions pending, it behaves like Defer
	ran = false
	s.AfterInteractions(func() { ran = true })
	s.Flush()
	assert.True(t, ran)
}

func TestImmediateScheduler(t *testing.T) {
	s := ImmediateScheduler{}
	ran := 0
	d := s.Defer(func() { ran++ })
	assert.Equal(t, 1, ran)
	d.Cancel() // already ran; no-op
	assert.Equal(t, 1, ran)

	s.AfterInteractions(func() { ran++ })
	assert.Equal(t, 2, ran)
}

func TestResizableWindow(t *testing.T) {
	w := NewResizableWindow(geom.Sz(400, 800))
	assert.Equal(t, geom.Sz(400, 800), w.WindowSize())

	var got []geom.Size
	cancel := w.OnResize(func(sz geom.Size) { got = append(got, sz) })
	w.Resize(geom.Sz(800, 400))
	assert.Equal(t, geom.Sz(800, 400), w.WindowSize())
	assert.Equal(t, []geom.Size{{Width: 800, Height: 400}}, got)

	cancel()
	w.Resize(geom.Sz(100, 100))
	assert.Len(t, got, 1)
}

func TestStaticWindow(t *testing.T) {
	w := &StaticWindow{Size: geom.Sz(400, 800)}
	assert.Equal(t, geom.Sz(400, 800), w.WindowSize())
	cancel := w.OnResize(func(geom.Size) { t.Fatal("should never fire") })
	cancel()
}
