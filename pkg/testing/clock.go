package testing

import (
	"sync"
	"time"
)

// FakeClock provides controllable time for deterministic frame tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Frames advances the clock n times by one frame at fps and calls frame
// after each step, stopping at the first error. It is the usual way to
// pump a player: clk.Frames(60, 60, p.Tick).
func (c *FakeClock) Frames(n, fps int, frame func() error) error {
	if fps <= 0 {
		fps = 60
	}
	step := time.Second / time.Duration(fps)
	for range n {
		c.Advance(step)
		if err := frame(); err != nil {
			return err
		}
	}
	return nil
}
