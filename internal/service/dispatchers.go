package service

import (
	"fmt"

	"github.com/MKhiriev/webinar-landing/internal/adapter"
	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/models"
)

// NewDispatcher builds the strategy selected by cfg.Dispatch.Mode.
func NewDispatcher(cfg config.StructuredConfig, adapters *adapter.Adapters, logger *logger.Logger) (Dispatcher, error) {
	mode, err := models.ParseDispatchMode(cfg.Dispatch.Mode)
	if err != nil {
		return nil, err
	}

	switch mode {
	case models.DispatchWhatsApp:
		return NewWhatsAppDispatcher(cfg.Dispatch, logger)
	case models.DispatchWebhook:
		return NewWebhookDispatcher(cfg.App, adapters.WebhookAdapter, logger)
	default:
		return nil, fmt.Errorf("no dispatcher for mode %q", mode)
	}
}
