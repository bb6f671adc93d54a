package reveal

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugStats holds per-tick counters. Only populated when debug mode is on.
type debugStats struct {
	tickTime  time.Duration
	drained   int
	fired     int
	dropped   int
	completed int
	active    int
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick stats
// and dropped events are logged to the debug output (stderr by default).
func (a *Animator) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// SetDebugOutput redirects debug logging. A nil writer restores stderr.
func (a *Animator) SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	a.debugOut = w
}

// debugLog prints the stats of one tick.
func (a *Animator) debugLog(stats debugStats) {
	if !a.debug {
		return
	}
	_, _ = fmt.Fprintf(a.debugOut,
		"[reveal] t=%.3fs | queue: %d | fired: %d | dropped: %d | completed: %d | active: %d | took: %v\n",
		a.now, stats.drained, stats.fired, stats.dropped, stats.completed, stats.active, stats.tickTime)
}

// dropped counts a request for a node that is gone or no longer observed.
// Not an error: late intersection events are expected after unmount.
func (a *Animator) dropped(r request, stats *debugStats) {
	stats.dropped++
	if a.debug {
		_, _ = fmt.Fprintf(a.debugOut, "[reveal] dropped event for node %q\n", r.id)
	}
}
