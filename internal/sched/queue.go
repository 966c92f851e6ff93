package sched

import "time"

// Deadline tells an idle callback how much of its slice remains.
type Deadline interface {
	TimeRemaining() time.Duration
}

// Scheduler is what the engine schedules through: idle callbacks with a
// deadline for background work, and zero-delay continuations for "keep going
// in the same turn" re-entry.
type Scheduler interface {
	RequestIdle(fn func(Deadline))
	QueueTask(fn func())
}

type sliceDeadline struct {
	clock Clock
	end   time.Time
}

func (d sliceDeadline) TimeRemaining() time.Duration {
	rem := d.end.Sub(d.clock.Now())
	if rem < 0 {
		return 0
	}
	return rem
}

// Queue is a deterministic FIFO scheduler. Nothing runs until the owner
// pumps it, so interleaving is fully controlled by the host loop: the TUI
// pumps on ticks, tests pump in a loop.
type Queue struct {
	clock Clock
	slice time.Duration
	tasks []func()
	idle  []func(Deadline)
}

// DefaultIdleSlice is the deadline granted to each idle callback when the
// owner does not choose one. Mirrors the ~16ms frame budget of a 60Hz host.
const DefaultIdleSlice = 16 * time.Millisecond

// NewQueue creates a queue granting slice per idle callback. A zero slice
// means DefaultIdleSlice; a nil clock means the real one.
func NewQueue(clock Clock, slice time.Duration) *Queue {
	if clock == nil {
		clock = RealClock{}
	}
	if slice <= 0 {
		slice = DefaultIdleSlice
	}
	return &Queue{clock: clock, slice: slice}
}

// Clock returns the clock the queue measures deadlines with.
func (q *Queue) Clock() Clock { return q.clock }

// QueueTask enqueues a zero-delay continuation. Continuations run before any
// pending idle callback: they belong to the turn that queued them.
func (q *Queue) QueueTask(fn func()) {
	q.tasks = append(q.tasks, fn)
}

// RequestIdle enqueues an idle callback to be granted a fresh slice.
func (q *Queue) RequestIdle(fn func(Deadline)) {
	q.idle = append(q.idle, fn)
}

// Pump runs the next pending callback, if any, and reports whether it ran.
func (q *Queue) Pump() bool {
	if len(q.tasks) > 0 {
		fn := q.tasks[0]
		q.tasks = q.tasks[1:]
		fn()
		return true
	}
	if len(q.idle) > 0 {
		fn := q.idle[0]
		q.idle = q.idle[1:]
		fn(sliceDeadline{clock: q.clock, end: q.clock.Now().Add(q.slice)})
		return true
	}
	return false
}

// RunUntilIdle pumps until no work is pending and returns how many callbacks
// ran. Callbacks may enqueue more work; with a virtual clock the caller is
// responsible for advancing time if a callback spins on a deadline.
func (q *Queue) RunUntilIdle() int {
	n := 0
	for q.Pump() {
		n++
	}
	return n
}

// Pending reports whether any callback is queued.
func (q *Queue) Pending() bool {
	return len(q.tasks) > 0 || len(q.idle) > 0
}
