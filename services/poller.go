package services

import (
	"sync"
	"time"
)

// monitorState is the bookkeeping shared by the status monitors: the
// loading/error slots and the fetch sequence counter that makes
// overlapping fetches last-issued-wins.
type monitorState struct {
	mu          sync.Mutex
	seq         uint64
	loading     bool
	errMsg      string
	lastUpdated time.Time
}

// issueLocked registers a new fetch and returns its sequence number.
// Callers must hold mu.
func (ms *monitorState) issueLocked() uint64 {
	ms.seq++
	ms.loading = true
	return ms.seq
}

// invalidateLocked makes every in-flight fetch stale, used on key
// change and teardown. Callers must hold mu.
func (ms *monitorState) invalidateLocked() {
	ms.seq++
	ms.loading = false
}

// currentLocked reports whether seq still belongs to the latest
// issued fetch. Callers must hold mu.
func (ms *monitorState) currentLocked(seq uint64) bool {
	return seq == ms.seq
}

// errorMessage derives the user-facing poll error: the fetch error's
// text, or a fixed fallback when there is none.
func errorMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
