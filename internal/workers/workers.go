package workers

import (
	"context"

	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers returns the jobs enabled by cfg. The sheet refresher is only
// added for a positive refresh interval.
func NewWorkers(loader ConfigLoader, cfg config.Sheet, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.RefreshInterval > 0 {
		w.workers = append(w.workers, NewConfigRefresher(loader, cfg.RefreshInterval, logger))
	}
	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
