package core

import (
	"fmt"
	"time"
)

// Timestep modes
const (
	TimestepFixed = "fixed"
	TimestepDelta = "delta"
)

// Stepper decides how many ticks' worth of animation a timer callback applies
type Stepper interface {
	Step(elapsed time.Duration) float64
}

// FixedStep applies exactly one tick per callback regardless of how late the
// callback ran. Animation speed follows the callback rate.
type FixedStep struct{}

func (FixedStep) Step(time.Duration) float64 { return 1 }

// DeltaStep scales each tick by the elapsed time relative to the nominal
// interval, so animation speed is independent of the callback rate.
type DeltaStep struct {
	Interval time.Duration
	MaxStep  float64 // clamp after long stalls, 0 means no clamp
}

func (d DeltaStep) Step(elapsed time.Duration) float64 {
	if d.Interval <= 0 {
		return 1
	}
	step := float64(elapsed) / float64(d.Interval)
	if d.MaxStep > 0 && step > d.MaxStep {
		step = d.MaxStep
	}
	return step
}

// NewStepper returns the stepper for a configured mode
func NewStepper(mode string, interval time.Duration) (Stepper, error) {
	switch mode {
	case TimestepFixed, "":
		return FixedStep{}, nil
	case TimestepDelta:
		return DeltaStep{Interval: interval, MaxStep: 10}, nil
	default:
		return nil, fmt.Errorf("unknown timestep mode %q", mode)
	}
}

// Timer is a self-rescheduling periodic deadline
type Timer struct {
	Interval time.Duration
	next     time.Time
	last     time.Time
}

// NewTimer schedules the first tick immediately
func NewTimer(interval time.Duration, now time.Time) *Timer {
	return &Timer{Interval: interval, next: now, last: now}
}

// Due reports whether the deadline has passed
func (t *Timer) Due(now time.Time) bool {
	return !now.Before(t.next)
}

// Remaining is the time left until the next deadline, never negative
func (t *Timer) Remaining(now time.Time) time.Duration {
	if d := t.next.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Advance fires the tick: it reschedules one interval from now and returns
// the time since the previous tick.
func (t *Timer) Advance(now time.Time) time.Duration {
	elapsed := now.Sub(t.last)
	t.last = now
	t.next = now.Add(t.Interval)
	return elapsed
}
