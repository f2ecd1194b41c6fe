package service

import (
	"testing"

	"github.com/MKhiriev/webinar-landing/internal/adapter"
	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/internal/mock"
	"github.com/MKhiriev/webinar-landing/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewDispatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapters := &adapter.Adapters{
		SheetAdapter:   mock.NewMockSheetAdapter(ctrl),
		WebhookAdapter: mock.NewMockWebhookAdapter(ctrl),
	}

	tests := []struct {
		name     string
		dispatch config.Dispatch
		wantMode models.DispatchMode
		wantErr  bool
	}{
		{"webhook", config.Dispatch{Mode: "webhook"}, models.DispatchWebhook, false},
		{"whatsapp", config.Dispatch{Mode: "whatsapp", WhatsAppNumber: "34600000000"}, models.DispatchWhatsApp, false},
		{"whatsapp without number", config.Dispatch{Mode: "whatsapp"}, "", true},
		{"unknown", config.Dispatch{Mode: "sms"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDispatcher(config.StructuredConfig{Dispatch: tt.dispatch}, adapters, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, d.Mode())
		})
	}
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapters := &adapter.Adapters{SheetAdapter: mock.NewMockSheetAdapter(ctrl)}
	cfg := config.StructuredConfig{
		App:      config.App{Version: "1.0.0"},
		Dispatch: config.Dispatch{Mode: "whatsapp", WhatsAppNumber: "+34600000000"},
	}

	services, err := NewServices(adapters, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.ConfigService)
	assert.NotNil(t, services.RegistrationService)
	assert.NotNil(t, services.AppInfoService)
	assert.Equal(t, models.DefaultLandingConfig(), services.ConfigStore.Current())
}

func TestNewServices_WebhookModeWithoutAdapter(t *testing.T) {
	cfg := config.StructuredConfig{
		App:      config.App{Version: "1.0.0"},
		Dispatch: config.Dispatch{Mode: "webhook"},
	}

	_, err := NewServices(&adapter.Adapters{}, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.ErrorIs(t, err, ErrWebhookAdapterUnavailable)
}

func TestNewServices_MissingVersion(t *testing.T) {
	cfg := config.StructuredConfig{
		Dispatch: config.Dispatch{Mode: "whatsapp", WhatsAppNumber: "+34600000000"},
	}

	_, err := NewServices(&adapter.Adapters{}, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
