package viewstate

import "time"

// AutoBehaviorState is a snapshot of a widget's auto-behavior (for example
// auto-rotation). The zero value is Active.
type AutoBehaviorState struct {
	Suspended bool
	// Pending reports whether a resume timer is armed. It is true exactly
	// when Suspended is true.
	Pending bool
	// ResumeDeadline is the scheduler time at which the pending timer fires.
	// Zero when nothing is pending.
	ResumeDeadline time.Duration
	// Generation is the tag of the most recently armed timer.
	Generation uint64
}

// Active reports whether auto-behavior is running.
func (s AutoBehaviorState) Active() bool {
	return !s.Suspended
}

// autoBehavior is the Active/Suspended state machine. Each interaction
// cancels the pending resume timer and arms a new one tagged with the next
// generation; a timeout only resumes if its generation is still the latest.
type autoBehavior struct {
	suspended  bool
	generation uint64
	timer      *Timer
	delay      time.Duration
}

func (a *autoBehavior) state() AutoBehaviorState {
	s := AutoBehaviorState{Suspended: a.suspended, Generation: a.generation}
	if a.timer != nil {
		s.Pending = true
		s.ResumeDeadline = a.timer.Due()
	}
	return s
}

// register suspends, replaces any pending timer and returns the new
// generation and whether this call moved the state from Active to Suspended.
func (a *autoBehavior) register(sched *Scheduler, fire func(gen uint64)) (gen uint64, suspended bool) {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	suspended = !a.suspended
	a.suspended = true
	a.generation++
	gen = a.generation
	a.timer = sched.AfterFunc(a.delay, func() { fire(gen) })
	return gen, suspended
}

// timeout resumes if gen is the latest generation. Stale generations are
// dropped and report false.
func (a *autoBehavior) timeout(gen uint64) bool {
	if !a.suspended || gen != a.generation {
		return false
	}
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.suspended = false
	return true
}

// cancel stops the pending timer without changing the suspension flag.
func (a *autoBehavior) cancel() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
