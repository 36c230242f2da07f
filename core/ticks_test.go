package core

import "testing"

// stepClock advances the counter by a fixed amount on every read, which is
// enough to drive the spin loops deterministically.
type stepClock struct {
	now  uint32
	step uint32
}

func (c *stepClock) Micros() uint32 {
	c.now += c.step
	return c.now
}

func TestElapsedBetween(t *testing.T) {
	cases := []struct {
		start, end, want uint32
	}{
		{0, 0, 0},
		{100, 350, 250},
		{0, 0xFFFFFFFF, 0xFFFFFFFF},
		// Counter wrapped between the two samples.
		{0xFFFFFF00, 0x00000100, 0x200},
		{0xFFFFFFFF, 0, 1},
	}
	for _, c := range cases {
		got := ElapsedBetween(c.start, c.end)
		if got != c.want {
			t.Errorf("ElapsedBetween(%#x, %#x) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestElapsedAcrossWrap(t *testing.T) {
	clk := &stepClock{now: 0xFFFFFFF0, step: 0x10}
	SetClockDriver(clk)

	start := Micros() // 0x00000000 after the pre-increment
	got := Elapsed(start)
	if got != 0x10 {
		t.Errorf("Elapsed across wrap = %d, want %d", got, 0x10)
	}
}

func TestDelayMillis(t *testing.T) {
	clk := &stepClock{step: 100}
	SetClockDriver(clk)

	before := clk.now
	DelayMillis(3)
	waited := clk.now - before
	if waited < 3000 {
		t.Errorf("DelayMillis(3) returned after %d us, want >= 3000", waited)
	}
	// The spin should not overshoot by more than one poll step.
	if waited > 3000+2*clk.step {
		t.Errorf("DelayMillis(3) overshot: waited %d us", waited)
	}
}

func TestDelayMillisAcrossWrap(t *testing.T) {
	clk := &stepClock{now: 0xFFFFF000, step: 500}
	SetClockDriver(clk)

	before := clk.now
	DelayMillis(10)
	if waited := clk.now - before; waited < 10000 {
		t.Errorf("DelayMillis(10) across wrap returned after %d us", waited)
	}
}
