// Package tracker provides lightweight counters for running tasks.
package tracker

import "sync/atomic"

// Tracker counts running tasks using atomics and remembers the peak.
type Tracker struct {
	running atomic.Int64
	peak    atomic.Int64
}

// Inc marks one more task as running.
func (t *Tracker) Inc() {
	n := t.running.Add(1)
	for {
		p := t.peak.Load()
		if n <= p || t.peak.CompareAndSwap(p, n) {
			return
		}
	}
}

// Dec marks one task as finished.
func (t *Tracker) Dec() { t.running.Add(-1) }

// Running returns the current running count.
func (t *Tracker) Running() int64 { return t.running.Load() }

// Peak returns the highest running count seen so far.
func (t *Tracker) Peak() int64 { return t.peak.Load() }
