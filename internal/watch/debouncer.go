// Package watch provides the file watching, debouncing and scheduling
// machinery behind serve mode.
package watch

import (
	"context"
	"time"
)

// Debouncer coalesces bursts of change notifications into single rebuild
// triggers: a rebuild fires after a quiet window with no further changes,
// but never later than the max delay after the first change in a burst.
type Debouncer struct {
	quiet time.Duration
	max   time.Duration
}

// NewDebouncer creates a debouncer. Non-positive durations get sane
// defaults (300ms quiet, 5s max).
func NewDebouncer(quiet, max time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = 300 * time.Millisecond
	}
	if max <= 0 {
		max = 5 * time.Second
	}
	return &Debouncer{quiet: quiet, max: max}
}

// Run consumes trigger and calls fire for each coalesced burst. It
// returns when ctx is canceled. fire runs on Run's goroutine; slow fires
// delay the next burst rather than overlapping it.
func (d *Debouncer) Run(ctx context.Context, trigger <-chan struct{}, fire func()) {
	var quietC, maxC <-chan time.Time

	reset := func() {
		quietC, maxC = nil, nil
	}

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-trigger:
			if !ok {
				return
			}
			quietC = time.After(d.quiet)
			if maxC == nil {
				maxC = time.After(d.max)
			}
		case <-quietC:
			reset()
			fire()
		case <-maxC:
			reset()
			fire()
		}
	}
}
