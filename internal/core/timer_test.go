package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestSpeedInterval(t *testing.T) {
	cases := []struct {
		speed int
		want  time.Duration
	}{
		{0, 505 * time.Millisecond},
		{50, 255 * time.Millisecond},
		{100, 5 * time.Millisecond},
		{-20, 505 * time.Millisecond},
		{250, 5 * time.Millisecond},
	}
	for _, tc := range cases {
		if got := SpeedInterval(tc.speed); got != tc.want {
			t.Fatalf("SpeedInterval(%d) = %v, want %v", tc.speed, got, tc.want)
		}
	}
}

func TestFixedStepFiresOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStepWithClock(100*time.Millisecond, clock.now)

	if fs.ShouldStep() {
		t.Fatal("fired before any time elapsed")
	}
	clock.advance(60 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired before the interval elapsed")
	}
	clock.advance(40 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not fire after a full interval")
	}
	if fs.ShouldStep() {
		t.Fatal("fired twice for one interval")
	}
}

func TestFixedStepDrainsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStepWithClock(10*time.Millisecond, clock.now)
	fs.ShouldStep()
	clock.advance(35 * time.Millisecond)

	fired := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired != 3 {
		t.Fatalf("fired %d times for 35ms at 10ms, want 3", fired)
	}
}

func TestFixedStepReset(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStepWithClock(10*time.Millisecond, clock.now)
	fs.ShouldStep()
	clock.advance(50 * time.Millisecond)
	fs.Reset()
	if fs.ShouldStep() {
		t.Fatal("fired right after Reset")
	}
	fs.SetInterval(0)
	if fs.Interval() != time.Millisecond {
		t.Fatalf("non-positive interval not floored, got %v", fs.Interval())
	}
}

func TestClampSpeed(t *testing.T) {
	if ClampSpeed(-1) != MinSpeed || ClampSpeed(101) != MaxSpeed || ClampSpeed(42) != 42 {
		t.Fatal("ClampSpeed does not clamp to the scale range")
	}
}
