package press

import "time"

// Handle identifies a scheduled action. The zero Handle is never issued.
type Handle uint64

type scheduled struct {
	handle Handle
	due    time.Duration
	fn     func()
}

// Timeline is a virtual clock with cancellable delayed actions.
// It is driven by Advance and never spawns goroutines; callers own the
// single goroutine it runs on.
type Timeline struct {
	now     time.Duration
	next    Handle
	pending []scheduled
}

// NewTimeline returns a timeline at time zero with nothing scheduled.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Now reports the virtual time elapsed since the timeline was created.
func (t *Timeline) Now() time.Duration { return t.now }

// Pending reports how many actions are still scheduled.
func (t *Timeline) Pending() int { return len(t.pending) }

// After schedules fn to run once d has elapsed on the timeline.
// Negative delays are treated as zero and run on the next Advance.
func (t *Timeline) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	t.next++
	t.pending = append(t.pending, scheduled{handle: t.next, due: t.now + d, fn: fn})
	return t.next
}

// Cancel removes a pending action. It reports whether the action was
// still pending.
func (t *Timeline) Cancel(h Handle) bool {
	for i, s := range t.pending {
		if s.handle == h {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the clock forward by dt, firing due actions in due order.
// While an action runs, Now reports its due time, so actions scheduled from
// inside a callback are measured from the instant that callback fired.
func (t *Timeline) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := t.now + dt
	for {
		i, ok := t.earliest(target)
		if !ok {
			break
		}
		s := t.pending[i]
		t.pending = append(t.pending[:i], t.pending[i+1:]...)
		t.now = s.due
		s.fn()
	}
	t.now = target
}

// earliest finds the first pending action due at or before limit.
// Ties resolve by scheduling order.
func (t *Timeline) earliest(limit time.Duration) (int, bool) {
	best := -1
	for i, s := range t.pending {
		if s.due > limit {
			continue
		}
		if best < 0 || s.due < t.pending[best].due ||
			(s.due == t.pending[best].due && s.handle < t.pending[best].handle) {
			best = i
		}
	}
	return best, best >= 0
}
