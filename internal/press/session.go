// Package press models the long-press progress ring: a hold charges a
// progress value, a sustained hold confirms, and a further hold sets the
// terminal flourish flag. Releasing at any point is a hard cancel.
//
// The package has no rendering dependency. Front ends feed it press events
// and elapsed time, and read back snapshots or derived render parameters.
package press

import (
	"fmt"
	"log/slog"
	"time"
)

// Phase is the coarse state of a session.
type Phase int

const (
	Idle Phase = iota
	Charging
	Confirmed
	Exploded
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Charging:
		return "charging"
	case Confirmed:
		return "confirmed"
	case Exploded:
		return "exploded"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Timings holds the durations of the charge sequence.
type Timings struct {
	Charge       time.Duration // ramp of progress from 0 to 1
	ConfirmDelay time.Duration // after full charge, before confirmed
	ExplodeDelay time.Duration // after confirmed, before exploded
}

// DefaultTimings confirms one second and explodes one and a half seconds
// after the press begins.
func DefaultTimings() Timings {
	return Timings{
		Charge:       750 * time.Millisecond,
		ConfirmDelay: 250 * time.Millisecond,
		ExplodeDelay: 500 * time.Millisecond,
	}
}

// Validate reports whether the timings can drive a session.
func (t Timings) Validate() error {
	if t.Charge <= 0 {
		return fmt.Errorf("charge must be >0, got %v", t.Charge)
	}
	if t.ConfirmDelay < 0 {
		return fmt.Errorf("confirm delay must be >=0, got %v", t.ConfirmDelay)
	}
	if t.ExplodeDelay <= 0 {
		return fmt.Errorf("explode delay must be >0, got %v", t.ExplodeDelay)
	}
	return nil
}

// ConfirmAt is the hold time after which the session confirms.
func (t Timings) ConfirmAt() time.Duration { return t.Charge + t.ConfirmDelay }

// ExplodeAt is the hold time after which the session explodes.
func (t Timings) ExplodeAt() time.Duration { return t.ConfirmAt() + t.ExplodeDelay }

// Snapshot is an immutable copy of a session's observable state.
type Snapshot struct {
	Phase      Phase
	Progress   float64
	Confirmed  bool
	Exploded   bool
	Held       bool
	Generation uint64
	Elapsed    time.Duration // time since the current press began, zero at rest
}

// Listener observes state changes. It runs synchronously on the goroutine
// that caused the change and must not call back into the session.
type Listener func(prev, next Snapshot)

// Option configures a Session.
type Option func(*Session)

// WithLogger routes transition logs to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithTimeline drives the session from a shared timeline.
func WithTimeline(tl *Timeline) Option {
	return func(s *Session) { s.timeline = tl }
}

// Session is the press-progress state machine. It is not safe for
// concurrent use; all calls must come from one goroutine.
type Session struct {
	timings  Timings
	timeline *Timeline
	log      *slog.Logger

	phase      Phase
	progress   float64
	confirmed  bool
	exploded   bool
	held       bool
	generation uint64
	startedAt  time.Duration
	pending    []Handle

	listeners map[int]Listener
	nextID    int
}

// NewSession returns an idle session. Invalid timings fall back to
// DefaultTimings.
func NewSession(t Timings, opts ...Option) *Session {
	s := &Session{
		timings:   t,
		listeners: map[int]Listener{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.timeline == nil {
		s.timeline = NewTimeline()
	}
	if err := t.Validate(); err != nil {
		s.log.Warn("Invalid press timings, using defaults", "error", err)
		s.timings = DefaultTimings()
	}
	return s
}

// Timings returns the durations in effect.
func (s *Session) Timings() Timings { return s.timings }

// SetTimings replaces the durations. It takes effect from the next press;
// a press in flight keeps the schedule it started with.
func (s *Session) SetTimings(t Timings) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.timings = t
	return nil
}

// Subscribe registers fn for state changes and returns a func that
// removes it.
func (s *Session) Subscribe(fn Listener) func() {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// Snapshot returns the current observable state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      s.phase,
		Progress:   s.progress,
		Confirmed:  s.confirmed,
		Exploded:   s.exploded,
		Held:       s.held,
		Generation: s.generation,
	}
	if s.held {
		snap.Elapsed = s.timeline.Now() - s.startedAt
	}
	return snap
}

// Render returns the derived render parameters for the current state.
func (s *Session) Render() Render { return RenderOf(s.Snapshot()) }

// PressStart begins charging. A press that arrives while a hold is already
// in progress is ignored.
func (s *Session) PressStart() {
	if s.held {
		s.log.Debug("Press start ignored, hold in progress", "generation", s.generation)
		return
	}
	prev := s.Snapshot()

	s.generation++
	s.held = true
	s.phase = Charging
	s.startedAt = s.timeline.Now()

	gen := s.generation
	confirm := s.timeline.After(s.timings.ConfirmAt(), func() { s.confirm(gen) })
	s.pending = append(s.pending, confirm)

	s.log.Debug("Press started", "generation", gen, "confirm_in", s.timings.ConfirmAt())
	s.emit(prev)
}

// PressEnd returns the session to idle and cancels anything scheduled by
// the press it ends. It is safe to call in any state.
func (s *Session) PressEnd() {
	prev := s.Snapshot()

	for _, h := range s.pending {
		s.timeline.Cancel(h)
	}
	s.pending = s.pending[:0]
	if s.held {
		// invalidates callbacks that already left the timeline
		s.generation++
	}

	s.held = false
	s.phase = Idle
	s.progress = 0
	s.confirmed = false
	s.exploded = false

	if prev.Held {
		s.log.Debug("Press ended", "phase", prev.Phase.String(), "progress", prev.Progress)
	}
	s.emit(prev)
}

// Advance moves the session's timeline forward by dt, applying the
// progress ramp and any transitions that fall due.
func (s *Session) Advance(dt time.Duration) {
	s.timeline.Advance(dt)
	s.ramp()
}

// ramp brings progress up to date with the timeline clock.
func (s *Session) ramp() {
	if !s.held || s.progress >= 1 {
		return
	}
	prev := s.Snapshot()
	elapsed := s.timeline.Now() - s.startedAt
	if elapsed >= s.timings.Charge {
		s.progress = 1
	} else {
		s.progress = float64(elapsed) / float64(s.timings.Charge)
	}
	s.emit(prev)
}

func (s *Session) confirm(gen uint64) {
	if gen != s.generation || !s.held {
		return
	}
	s.ramp()
	if s.progress < 1 {
		return
	}
	prev := s.Snapshot()
	s.confirmed = true
	s.phase = Confirmed

	explode := s.timeline.After(s.timings.ExplodeDelay, func() { s.explode(gen) })
	s.pending = append(s.pending, explode)

	s.log.Debug("Press confirmed", "generation", gen)
	s.emit(prev)
}

func (s *Session) explode(gen uint64) {
	if gen != s.generation || !s.held || !s.confirmed {
		return
	}
	prev := s.Snapshot()
	s.exploded = true
	s.phase = Exploded
	s.log.Debug("Press exploded", "generation", gen)
	s.emit(prev)
}

func (s *Session) emit(prev Snapshot) {
	next := s.Snapshot()
	if sameState(prev, next) {
		return
	}
	for _, fn := range s.listeners {
		fn(prev, next)
	}
}

// sameState ignores Elapsed, which moves on every tick of a hold.
func sameState(a, b Snapshot) bool {
	a.Elapsed, b.Elapsed = 0, 0
	return a == b
}
