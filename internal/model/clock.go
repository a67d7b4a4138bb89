package model

import (
	"sync"
	"time"
)

// Clock tracks when a game was last used.
type Clock struct {
	mu          sync.Mutex
	lastTouched time.Time
	now         func() time.Time
}

func NewClock() *Clock {
	return newClockAt(time.Now)
}

func newClockAt(now func() time.Time) *Clock {
	return &Clock{
		lastTouched: now(),
		now:         now,
	}
}

func (c *Clock) Touch() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastTouched = c.now()
}

func (c *Clock) IdleFor() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now().Sub(c.lastTouched)
}
