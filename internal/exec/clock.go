package exec

import "time"

// Clock is coredb's consumed-from-the-host time source (spec.md §6:
// "a time source now_ms() -> u64"). Tests supply a fixed or stepping
// Clock so save/update timestamp ordering is deterministic.
type Clock interface {
	NowMs() uint64
}

// SystemClock reads the wall clock via time.Now, the default outside
// tests.
type SystemClock struct{}

func (SystemClock) NowMs() uint64 { return uint64(time.Now().UnixMilli()) }

// FixedClock always returns the same timestamp; useful for table-driven
// tests that assert exact created/modified values.
type FixedClock uint64

func (c FixedClock) NowMs() uint64 { return uint64(c) }

// StepClock returns an increasing sequence of timestamps, one tick per
// call, so a test can assert strict ordering (modified > created) without
// hardcoding wall-clock values.
type StepClock struct {
	next uint64
	step uint64
}

// NewStepClock builds a StepClock starting at start and advancing by step
// on every NowMs call after the first.
func NewStepClock(start, step uint64) *StepClock {
	return &StepClock{next: start, step: step}
}

func (c *StepClock) NowMs() uint64 {
	now := c.next
	c.next += c.step
	return now
}
