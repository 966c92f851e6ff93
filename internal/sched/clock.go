package sched

import "time"

// Clock supplies time to deadline checks. Injected so tests can drive the
// engine's batch bounds deterministically.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// VirtualClock only moves when advanced explicitly.
type VirtualClock struct {
	now time.Time
}

// NewVirtualClock starts a virtual clock at an arbitrary fixed instant.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{now: time.Unix(0, 0)}
}

func (c *VirtualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *VirtualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
