package core

import "time"

const (
	// MinSpeed and MaxSpeed bound the speed scale.
	MinSpeed = 0
	MaxSpeed = 100
	// DefaultSpeed is the scale position a fresh window starts at.
	DefaultSpeed = 50
)

// ClampSpeed limits a speed value to the scale range.
func ClampSpeed(speed int) int {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}

// SpeedInterval maps a speed scale position to the delay between automatic
// generations: 505ms at 0 down to 5ms at 100.
func SpeedInterval(speed int) time.Duration {
	return time.Duration(505-5*ClampSpeed(speed)) * time.Millisecond
}

// FixedStep fires at a steady interval on top of a frame loop that runs at
// its own rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	return NewFixedStepWithClock(interval, time.Now)
}

// NewFixedStepWithClock is NewFixedStep with an explicit time source.
func NewFixedStepWithClock(interval time.Duration, now func() time.Time) *FixedStep {
	if now == nil {
		now = time.Now
	}
	fs := &FixedStep{now: now}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the firing interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Millisecond
	}
	f.step = interval
}

// Interval returns the current firing interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset forgets accumulated time so the next firing is one full interval
// after the next ShouldStep call.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether an interval has elapsed since the last firing.
// It fires at most once per call; a backlog drains on subsequent calls.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
