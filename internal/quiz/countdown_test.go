package quiz

import "testing"

func TestCountdownFiresExactlyOnce(t *testing.T) {
	var c Countdown
	c.Start(3)

	fired := 0
	for i := 0; i < 3; i++ {
		if c.Tick() {
			fired++
		}
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", c.Remaining())
	}
	if fired != 1 {
		t.Fatalf("time-up fired %d times after 3 ticks, want 1", fired)
	}
	if c.Running() {
		t.Error("clock should stop at zero")
	}

	if c.Tick() {
		t.Error("a fourth tick must not fire again")
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining() = %d after extra tick, want 0", c.Remaining())
	}
}

func TestCountdownStopSuppressesTimeUp(t *testing.T) {
	var c Countdown
	c.Start(2)
	c.Tick()
	c.Stop()

	if c.Tick() {
		t.Error("tick after Stop must not fire")
	}
	if c.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", c.Remaining())
	}
	if c.Expired() {
		t.Error("stopped clock is not expired")
	}
}

func TestCountdownZeroDurationIsUntimed(t *testing.T) {
	var c Countdown
	c.Start(0)

	if c.Running() {
		t.Error("zero duration should not run")
	}
	if c.Tick() {
		t.Error("untimed clock must never fire")
	}
}

func TestCountdownState(t *testing.T) {
	var c Countdown
	c.Start(90)
	c.Tick()

	state := c.State()
	if state.RemainingSeconds != 89 || !state.Running {
		t.Errorf("State() = %+v, want 89 running", state)
	}
}
