package swoop

import (
	"fmt"
	"os"
	"time"
)

// updateStats holds per-update timing and counts.
// Only populated when Manager.debug is true.
type updateStats struct {
	active  int
	reaped  int
	elapsed time.Duration
}

// debugLog prints update stats to stderr.
func (m *Manager) debugLog(stats updateStats) {
	if !m.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[swoop] active: %d | reaped: %d | update: %v\n",
		stats.active, stats.reaped, stats.elapsed)
}

// debugMaxActive is the active-instance count above which Add warns.
const debugMaxActive = 1000

// debugCheckActiveCount warns on stderr if too many instances are running,
// which usually means finished ones are being re-added every frame.
func debugCheckActiveCount(n int) {
	if n == debugMaxActive+1 {
		_, _ = fmt.Fprintf(os.Stderr, "[swoop] warning: %d active instances exceeds %d\n",
			n, debugMaxActive)
	}
}
