package workers

import (
	"context"
	"time"

	"jobdeck_gateway/internal/logger"
	"jobdeck_gateway/internal/state"
)

// StateWorker evicts profile state that has not been touched within the
// retention window. A browser profile that never comes back keeps its
// rows out of the store this way.
type StateWorker struct {
	store *state.Store
	ttl   time.Duration
}

func NewStateWorker(store *state.Store, ttl time.Duration) *StateWorker {
	return &StateWorker{store: store, ttl: ttl}
}

func (w *StateWorker) Start(ctx context.Context) {
	go w.purgeStaleProfiles(ctx)
}

func (w *StateWorker) purgeStaleProfiles(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("state worker stopped")
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-w.ttl)
			purged, err := w.store.PurgeStale(cutoff)
			if err != nil {
				logger.WithError(err).Error("failed to purge stale profile state")
			} else if purged > 0 {
				logger.Info("purged stale profile state", "rows", purged)
			}
		}
	}
}
