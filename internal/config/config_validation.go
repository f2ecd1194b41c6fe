// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/MKhiriev/webinar-landing/internal/utils"
	"github.com/MKhiriev/webinar-landing/models"
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the service.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Version == "" || cfg.App.SourceTag == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Sheet.RequestTimeout < 0 || cfg.Sheet.RefreshInterval < 0 {
		return ErrInvalidSheetConfigs
	}

	return cfg.Dispatch.validate()
}

func (p *PreviewConfig) validate() error {
	if p.LogFile == "" {
		return ErrInvalidPreviewConfigs
	}

	return nil
}

func (d Dispatch) validate() error {
	if d.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidDispatchConfigs)
	}

	mode, err := models.ParseDispatchMode(d.Mode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDispatchConfigs, err)
	}

	switch mode {
	case models.DispatchWebhook:
		if !isHTTPURL(d.WebhookURL) {
			return fmt.Errorf("%w: webhook mode requires an http(s) webhook URL", ErrInvalidDispatchConfigs)
		}
	case models.DispatchWhatsApp:
		if !utils.IsDestinationNumber(d.WhatsAppNumber) {
			return fmt.Errorf("%w: whatsapp mode requires a destination number", ErrInvalidDispatchConfigs)
		}
		if !isHTTPURL(d.WhatsAppBaseURL) {
			return fmt.Errorf("%w: invalid whatsapp base URL", ErrInvalidDispatchConfigs)
		}
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
