package adapter

import (
	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/models"
)

// Adapters groups the outbound clients. WebhookAdapter is nil unless the
// dispatch mode is webhook.
type Adapters struct {
	SheetAdapter   SheetAdapter
	WebhookAdapter WebhookAdapter
}

func NewAdapters(cfg config.StructuredConfig, logger *logger.Logger) (*Adapters, error) {
	adapters := &Adapters{
		SheetAdapter: NewHTTPSheetAdapter(cfg.Sheet, logger),
	}

	if models.DispatchMode(cfg.Dispatch.Mode) == models.DispatchWebhook {
		webhookAdapter, err := NewHTTPWebhookAdapter(cfg.Dispatch, logger)
		if err != nil {
			return nil, err
		}
		adapters.WebhookAdapter = webhookAdapter
	}

	return adapters, nil
}
