package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/webinar-landing/internal/logger"
)

// ConfigRefresher reloads the sheet on a fixed interval so edits show up
// without a restart. A failed fetch keeps serving the last loaded snapshot.
type ConfigRefresher struct {
	loader   ConfigLoader
	interval time.Duration

	logger *logger.Logger
}

func NewConfigRefresher(loader ConfigLoader, interval time.Duration, logger *logger.Logger) *ConfigRefresher {
	return &ConfigRefresher{
		loader:   loader,
		interval: interval,
		logger:   logger,
	}
}

// Run implements [Worker].
func (r *ConfigRefresher) Run(ctx context.Context) {
	go r.loop(ctx)
}

func (r *ConfigRefresher) loop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info().Dur("interval", r.interval).Msg("config refresher started")

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("config refresher stopped")
			return
		case <-ticker.C:
			cfg, err := r.loader.Refresh(ctx)
			if err != nil {
				r.logger.Err(err).Msg("landing configuration refresh failed, keeping current snapshot")
				continue
			}
			r.logger.Debug().
				Int("keys", cfg.Len()).
				Msg("landing configuration refreshed")
		}
	}
}
