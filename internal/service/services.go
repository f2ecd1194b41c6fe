package service

import (
	"fmt"

	"github.com/MKhiriev/webinar-landing/internal/adapter"
	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/models"
)

type Services struct {
	ConfigService       ConfigService
	ConfigStore         *ConfigStore
	RegistrationService RegistrationService
	AppInfoService      AppInfoService
}

// NewServices wires the services. The configuration store starts with the
// defaults; callers load the sheet before serving.
func NewServices(adapters *adapter.Adapters, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	dispatcher, err := NewDispatcher(cfg, adapters, logger)
	if err != nil {
		return nil, fmt.Errorf("dispatcher: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	configService := NewConfigService(cfg.Sheet, adapters.SheetAdapter, logger)

	return &Services{
		ConfigService:       configService,
		ConfigStore:         NewConfigStore(models.DefaultLandingConfig()),
		RegistrationService: NewRegistrationService(dispatcher, logger),
		AppInfoService:      appInfoService,
	}, nil
}
