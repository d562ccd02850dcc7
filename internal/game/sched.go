package game

import "time"

// Scheduler runs periodic and one-shot tasks on a logical clock. Time only
// moves when Advance is called, so the engine is single-threaded and fully
// deterministic: callbacks run to completion in deadline order and never
// overlap. Cancelling a handle guarantees its callback will not fire again,
// which closes the stale-timer window ad-hoc interval IDs would leave open.
type Scheduler struct {
	now   time.Duration
	tasks []*TaskHandle
}

// TaskHandle identifies a scheduled task and allows cancelling it.
type TaskHandle struct {
	at        time.Duration // Next deadline on the logical clock
	interval  time.Duration // Repeat interval; 0 for one-shots
	fn        func()
	repeating bool
	cancelled bool
}

// Cancel prevents the task from firing again. Safe to call from inside a
// task callback and safe to call more than once.
func (h *TaskHandle) Cancel() {
	if h != nil {
		h.cancelled = true
	}
}

// NewScheduler creates a scheduler with its logical clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every registers fn to run every interval, first firing one interval from
// the current logical time.
func (s *Scheduler) Every(interval time.Duration, fn func()) *TaskHandle {
	h := &TaskHandle{
		at:        s.now + interval,
		interval:  interval,
		fn:        fn,
		repeating: true,
	}
	s.tasks = append(s.tasks, h)
	return h
}

// After registers fn to run once, delay from the current logical time.
func (s *Scheduler) After(delay time.Duration, fn func()) *TaskHandle {
	h := &TaskHandle{
		at: s.now + delay,
		fn: fn,
	}
	s.tasks = append(s.tasks, h)
	return h
}

// CancelAll cancels every pending task.
func (s *Scheduler) CancelAll() {
	for _, h := range s.tasks {
		h.cancelled = true
	}
	s.tasks = s.tasks[:0]
}

// Advance moves the logical clock forward by dt, firing every task whose
// deadline falls within the window. Tasks fire in deadline order; the clock
// sits at each deadline while its callback runs, so tasks scheduled from
// inside a callback are based correctly. Callbacks may cancel or register
// tasks freely.
func (s *Scheduler) Advance(dt time.Duration) {
	target := s.now + dt

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}

		s.now = next.at
		if next.repeating {
			next.at += next.interval
		} else {
			next.cancelled = true
		}
		next.fn()
	}

	s.now = target
	s.compact()
}

// nextDue returns the earliest non-cancelled task due at or before target,
// preferring registration order on equal deadlines.
func (s *Scheduler) nextDue(target time.Duration) *TaskHandle {
	var due *TaskHandle
	for _, h := range s.tasks {
		if h.cancelled || h.at > target {
			continue
		}
		if due == nil || h.at < due.at {
			due = h
		}
	}
	return due
}

// compact drops cancelled tasks from the queue.
func (s *Scheduler) compact() {
	kept := s.tasks[:0]
	for _, h := range s.tasks {
		if !h.cancelled {
			kept = append(kept, h)
		}
	}
	s.tasks = kept
}

// Now returns the current logical time. Useful in tests.
func (s *Scheduler) Now() time.Duration {
	return s.now
}
