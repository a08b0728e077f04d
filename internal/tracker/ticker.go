package tracker

import (
	"sync"
	"time"
)

// countdown is the cancellable handle for the 1-second shift countdown.
// At most one is active per tracker.
type countdown struct {
	stop chan struct{}
	once sync.Once
}

func (c *countdown) halt() {
	c.once.Do(func() { close(c.stop) })
}

// startCountdown publishes the remaining time immediately, then once per
// tick until it reaches zero, at which point the ticker stops itself. Any
// previously running countdown is cancelled first.
func (t *Tracker) startCountdown(end time.Time) {
	c := &countdown{stop: make(chan struct{})}
	t.mu.Lock()
	if t.countdown != nil {
		t.countdown.halt()
	}
	t.countdown = c
	interval := t.tickEvery
	t.mu.Unlock()

	remaining := RemainingSeconds(end, t.now())
	t.setRemaining(remaining)
	if remaining == 0 {
		c.halt()
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-c.stop:
				return
			case <-ticker.C:
				r := RemainingSeconds(end, t.now())
				t.setRemaining(r)
				if r == 0 {
					c.halt()
					return
				}
			}
		}
	}()
}

func (t *Tracker) stopCountdown() {
	t.mu.Lock()
	if t.countdown != nil {
		t.countdown.halt()
		t.countdown = nil
	}
	t.mu.Unlock()
}

func (t *Tracker) setRemaining(n int) {
	t.mu.Lock()
	t.remaining = n
	fn := t.onTick
	t.mu.Unlock()
	if fn != nil {
		fn(n)
	}
}
