package config

import (
	"fmt"

	"github.com/MKhiriev/webinar-landing/models"
)

// PreviewConfig is the view of [StructuredConfig] used by the terminal
// preview. It keeps the sections needed to load the sheet and dispatch a
// registration, plus the form typed on the command line.
type PreviewConfig struct {
	App      App
	Sheet    Sheet
	Dispatch Dispatch

	// LogFile receives all log output of the preview.
	LogFile string

	// Form is submitted after the page is shown when Form.Name is set.
	Form models.RegistrationForm
}

// Structured rebuilds the subset of [StructuredConfig] the shared
// constructors expect.
func (p PreviewConfig) Structured() StructuredConfig {
	return StructuredConfig{
		App:      p.App,
		Sheet:    p.Sheet,
		Dispatch: p.Dispatch,
	}
}

// HasForm reports whether a registration should be submitted.
func (p PreviewConfig) HasForm() bool {
	return p.Form.Name != ""
}

// GetPreviewConfig builds and validates the preview view from the merged
// structured configuration.
func GetPreviewConfig() (*PreviewConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	previewCfg := newPreviewConfig(cfg)

	return previewCfg, previewCfg.validate()
}

func newPreviewConfig(cfg *StructuredConfig) *PreviewConfig {
	return &PreviewConfig{
		App:      cfg.App,
		Sheet:    cfg.Sheet,
		Dispatch: cfg.Dispatch,
		LogFile:  cfg.Preview.LogFile,
		Form: models.RegistrationForm{
			Name:    cfg.Preview.Name,
			Email:   cfg.Preview.Email,
			Phone:   cfg.Preview.Phone,
			Channel: cfg.Preview.Channel,
		},
	}
}
