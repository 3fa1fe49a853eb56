package viewstate

import (
	"sort"
	"time"
)

// Scheduler runs one-shot deferred callbacks against a frame-driven clock.
// Time only moves when Advance is called, normally once per frame from
// Controller.Update, so callbacks always run on the caller's goroutine in
// due order.
//
// There is no global scheduler; each Controller owns one.
type Scheduler struct {
	now    time.Duration
	timers []*Timer
	nextID uint64
	firing []*Timer
}

// Timer is a pending callback created by Scheduler.AfterFunc.
type Timer struct {
	id    uint64
	due   time.Duration
	fn    func()
	sched *Scheduler
}

// NewScheduler creates a scheduler whose clock starts at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's current time (total time advanced so far).
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of armed timers.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// AfterFunc arms fn to run once d after the current time.
// A non-positive d fires on the next Advance.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.nextID++
	t := &Timer{id: s.nextID, due: s.now + d, fn: fn, sched: s}
	s.timers = append(s.timers, t)
	return t
}

// Stop cancels the timer. It reports whether the call stopped the timer;
// false means it already fired or was already stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.sched == nil {
		return false
	}
	s := t.sched
	t.sched = nil
	for i, p := range s.timers {
		if p == t {
			copy(s.timers[i:], s.timers[i+1:])
			s.timers[len(s.timers)-1] = nil
			s.timers = s.timers[:len(s.timers)-1]
			return true
		}
	}
	return false
}

// Due returns the scheduler time at which the timer fires.
func (t *Timer) Due() time.Duration {
	return t.due
}

// Advance moves the clock forward by dt and runs every timer whose due time
// has been reached, earliest first (ties in arming order). Only timers armed
// before the call are eligible: a timer armed by a callback runs on a later
// Advance, even when it is already due, so a callback that re-arms itself
// with a zero delay fires once per call. Returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}
	s.firing = s.collectDue(s.firing[:0], s.nextID)
	fired := 0
	for i, t := range s.firing {
		s.firing[i] = nil
		// An earlier callback in this batch may have stopped t.
		if t.sched == nil {
			continue
		}
		t.Stop()
		t.fn()
		fired++
	}
	s.firing = s.firing[:0]
	return fired
}

// collectDue appends due timers armed no later than id limit to buf in
// firing order.
func (s *Scheduler) collectDue(buf []*Timer, limit uint64) []*Timer {
	for _, t := range s.timers {
		if t.due <= s.now && t.id <= limit {
			buf = append(buf, t)
		}
	}
	sort.Slice(buf, func(i, j int) bool {
		if buf[i].due != buf[j].due {
			return buf[i].due < buf[j].due
		}
		return buf[i].id < buf[j].id
	})
	return buf
}

// StopAll cancels every pending timer.
func (s *Scheduler) StopAll() {
	for i, t := range s.timers {
		t.sched = nil
		s.timers[i] = nil
	}
	s.timers = s.timers[:0]
}
