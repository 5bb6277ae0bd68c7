// Package dedup remembers recently processed delivery ids so replays inside
// the retention window are dropped.
//
// The set is process-local by design: a restart forgets everything and the
// pipeline accepts double-processing across restarts. Expiry is evaluated
// lazily on lookup against an injected clock instead of scheduling one
// timer per id
package dedup

import (
	"sync"
	"time"

	"draftforge/internal/platform/clock"
)

// Retention is how long a delivery id is remembered
const Retention = 10 * time.Minute

// Set is a concurrency-safe replay guard
type Set struct {
	mu    sync.Mutex
	tick  clock.Clock
	seen  map[string]time.Time // id -> expiry
	sweep time.Time            // next opportunistic full sweep
}

// New constructs a Set using tick as its time source
func New(tick clock.Clock) *Set {
	if tick == nil {
		tick = clock.System{}
	}
	return &Set{tick: tick, seen: make(map[string]time.Time)}
}

// Seen records id on first sighting and returns false; any further call with
// the same id before its retention window elapses returns true. The window is
// not extended by repeat sightings. Check and insert are a single step under
// the lock so two concurrent deliveries cannot both pass
func (s *Set) Seen(id string) bool {
	now := s.tick.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if exp, ok := s.seen[id]; ok {
		if now.Before(exp) {
			return true
		}
		// expired entry; fall through and re-record
	}
	s.seen[id] = now.Add(Retention)

	if now.After(s.sweep) {
		s.sweepLocked(now)
		s.sweep = now.Add(Retention)
	}
	return false
}

// Len reports the number of live entries (expired ones included until swept)
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}

// sweepLocked drops every expired entry; caller holds the lock
func (s *Set) sweepLocked(now time.Time) {
	for id, exp := range s.seen {
		if !now.Before(exp) {
			delete(s.seen, id)
		}
	}
}
