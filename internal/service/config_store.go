package service

import (
	"sync/atomic"

	"github.com/MKhiriev/webinar-landing/models"
)

// ConfigStore holds the landing configuration currently served. Snapshots
// are immutable and replaced as a whole, so readers never see a partial
// update.
type ConfigStore struct {
	current atomic.Pointer[models.LandingConfig]
}

// NewConfigStore returns a store serving initial.
func NewConfigStore(initial models.LandingConfig) *ConfigStore {
	s := &ConfigStore{}
	s.Replace(initial)
	return s
}

// Current returns the snapshot being served.
func (s *ConfigStore) Current() models.LandingConfig {
	if cfg := s.current.Load(); cfg != nil {
		return *cfg
	}
	return models.DefaultLandingConfig()
}

// Replace swaps in cfg for all subsequent readers.
func (s *ConfigStore) Replace(cfg models.LandingConfig) {
	s.current.Store(&cfg)
}
