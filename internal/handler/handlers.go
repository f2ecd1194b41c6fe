package handler

import (
	"fmt"

	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/handler/http"
	"github.com/MKhiriev/webinar-landing/internal/landing"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, controller *landing.Controller, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(services, controller, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("http handler: %w", err)
	}

	return &Handlers{HTTP: httpHandler}, nil
}
