// Copyright (c) 2025, Anchorkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

// TickScheduler is a [Scheduler] backed by an explicit task queue that
// the host pumps once per tick of its event loop. Tasks queued during
// a [TickScheduler.Flush] run on the next flush, not the current one,
// so a deferred callback is always a later-tick continuation.
//
// Interaction tracking is opt-in: while [TickScheduler.BeginInteraction]
// has been called more times than [TickScheduler.EndInteraction], tasks
// from AfterInteractions are held and only released (onto the regular
// queue) when the count returns to zero.
//
// Not safe for concurrent use; all calls must come from the host
// UI loop.
type TickScheduler struct {
	queue        []*tickTask
	held         []*tickTask
	interactions int
}

// NewTickScheduler returns a new empty [TickScheduler].
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

type tickTask struct {
	fn       func()
	canceled bool
}

func (t *tickTask) Cancel() {
	t.canceled = true
}

func (s *TickScheduler) Defer(fn func()) Deferred {
	t := &tickTask{fn: fn}
	s.queue = append(s.queue, t)
	return t
}

func (s *TickScheduler) AfterInteractions(fn func()) {
	t := &tickTask{fn: fn}
	if s.interactions > 0 {
		s.held = append(s.held, t)
		return
	}
	s.queue = append(s.queue, t)
}

// BeginInteraction marks the start of interaction or animation work.
func (s *TickScheduler) BeginInteraction() {
	s.interactions++
}

// EndInteraction marks the end of interaction or animation work,
// releasing held tasks when no work remains.
func (s *TickScheduler) EndInteraction() {
	if s.interactions > 0 {
		s.interactions--
	}
	if s.interactions == 0 && len(s.held) > 0 {
		s.queue = append(s.queue, s.held...)
		s.held = nil
	}
}

// Pending returns the number of queued, not-yet-canceled tasks,
// not counting held interaction tasks.
func (s *TickScheduler) Pending() int {
	n := 0
	for _, t := range s.queue {
		if !t.canceled {
			n++
		}
	}
	return n
}

// Flush runs one macro tick: every task queued before the call, in
// order, skipping canceled ones. Tasks queued by the running tasks are
// left for the next flush. It returns the number of tasks run.
func (s *TickScheduler) Flush() int {
	tasks := s.queue
	s.queue = nil
	n := 0
	for _, t := range tasks {
		if t.canceled {
			continue
		}
		t.fn()
		n++
	}
	return n
}

// FlushAll flushes until no runnable tasks remain, returning the total
// number of tasks run.
func (s *TickScheduler) FlushAll() int {
	n := 0
	for s.Pending() > 0 {
		n += s.Flush()
	}
	return n
}
