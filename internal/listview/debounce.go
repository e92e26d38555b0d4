// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package listview

import (
	"sync"
	"time"
)

// DebounceDelay is the quiet window applied to rapid-fire inputs before a
// value is acted on.
const DebounceDelay = 300 * time.Millisecond

// Debouncer coalesces a burst of values into a single callback invocation.
// Each Set re-arms a single-shot timer; only the value present when the
// timer fires is delivered. Intermediate values are dropped, a pending
// timer is always cancelled before a new one is armed, and nothing fires
// after Stop.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(string)
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// NewDebouncer creates a debouncer that delivers the last value seen in any
// quiet window of the given delay to fn.
func NewDebouncer(delay time.Duration, fn func(string)) *Debouncer {
	if delay <= 0 {
		delay = DebounceDelay
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Set records a new value and re-arms the timer. The callback runs on the
// timer goroutine once the delay elapses with no further Set calls.
func (d *Debouncer) Set(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	// The generation counter guards against a timer that already fired and
	// is waiting on the mutex while a newer value arrives.
	d.gen++
	gen := d.gen

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		stale := d.stopped || gen != d.gen
		d.mu.Unlock()
		if stale {
			return
		}
		d.fn(value)
	})
}

// Stop cancels any pending delivery. Further Set calls are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
