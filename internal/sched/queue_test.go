package sched_test

import (
	"testing"
	"time"

	"glint/internal/sched"
)

func TestQueueTasksRunBeforeIdle(t *testing.T) {
	q := sched.NewQueue(sched.NewVirtualClock(), 0)
	var order []string
	q.RequestIdle(func(sched.Deadline) { order = append(order, "idle") })
	q.QueueTask(func() { order = append(order, "task") })

	if !q.Pending() {
		t.Fatal("queue should report pending work")
	}
	q.RunUntilIdle()
	if len(order) != 2 || order[0] != "task" || order[1] != "idle" {
		t.Fatalf("order = %v, want [task idle]", order)
	}
	if q.Pending() {
		t.Fatal("queue should be drained")
	}
}

func TestQueueIdleDeadlineFollowsSlice(t *testing.T) {
	clock := sched.NewVirtualClock()
	q := sched.NewQueue(clock, 10*time.Millisecond)

	var remaining []time.Duration
	q.RequestIdle(func(d sched.Deadline) {
		remaining = append(remaining, d.TimeRemaining())
		clock.Advance(4 * time.Millisecond)
		remaining = append(remaining, d.TimeRemaining())
		clock.Advance(20 * time.Millisecond)
		remaining = append(remaining, d.TimeRemaining())
	})
	q.Pump()

	want := []time.Duration{10 * time.Millisecond, 6 * time.Millisecond, 0}
	for i := range want {
		if remaining[i] != want[i] {
			t.Fatalf("TimeRemaining[%d] = %v, want %v", i, remaining[i], want[i])
		}
	}
}

func TestQueueCallbacksMayEnqueueMore(t *testing.T) {
	q := sched.NewQueue(sched.NewVirtualClock(), 0)
	runs := 0
	q.QueueTask(func() {
		runs++
		q.QueueTask(func() { runs++ })
	})
	n := q.RunUntilIdle()
	if n != 2 || runs != 2 {
		t.Fatalf("ran %d callbacks (%d tasks), want 2", n, runs)
	}
}

func TestQueuePumpEmpty(t *testing.T) {
	q := sched.NewQueue(nil, 0)
	if q.Pump() {
		t.Fatal("Pump on empty queue must report false")
	}
}
