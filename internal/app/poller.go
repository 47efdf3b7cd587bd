package app

import (
	"context"
	"time"

	"github.com/five82/cinematch/internal/logging"
	"github.com/five82/cinematch/internal/state"
)

const (
	pingTimeout = 3 * time.Second
	maxBackoff  = 2 * time.Minute
)

// Pinger is the slice of the backend client the poller needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StartPoller launches a background goroutine that checks backend health and
// records the outcome in store. An interval of zero or less disables polling.
// It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, pinger Pinger, interval time.Duration) {
	if interval <= 0 || pinger == nil || store == nil {
		return
	}
	go func() {
		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			refresh(ctx, store, pinger)
			timer.Reset(calculateBackoff(store.Snapshot().ConsecutiveFailures, interval))
		}
	}()
}

func refresh(ctx context.Context, store *state.Store, pinger Pinger) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := pinger.Ping(pingCtx)
	latency := time.Since(start)
	if ctx.Err() != nil {
		return
	}

	prev := store.Snapshot()
	store.Update(latency, err)
	switch {
	case err != nil && prev.ConsecutiveFailures == 0:
		logging.Warn().Err(err).Msg("backend health check failed")
	case err == nil && prev.ConsecutiveFailures > 0:
		logging.Info().Dur("latency", latency).Int("failures", prev.ConsecutiveFailures).Msg("backend reachable again")
	}
}

// calculateBackoff doubles the interval for each consecutive failure, capped
// at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
