package state

import (
	"fmt"
	"sync"
	"time"
)

// Snapshot is the latest known backend health as seen by the poller.
type Snapshot struct {
	HasCheck            bool
	LastChecked         time.Time
	LastOK              time.Time
	Latency             time.Duration
	LastError           error
	ConsecutiveFailures int // Number of consecutive failed pings
}

// IsOffline returns true when the backend has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Reachable reports whether the most recent ping succeeded.
func (s Snapshot) Reachable() bool {
	return s.HasCheck && s.LastError == nil
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records the outcome of one health check. On failure the last
// successful latency and time are kept so the header can show them.
func (s *Store) Update(latency time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.snapshot.HasCheck = true
	s.snapshot.LastChecked = now

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Latency = latency
	s.snapshot.LastOK = now
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
