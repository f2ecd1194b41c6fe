// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the landing service: loading
// the page configuration from the remote sheet, keeping the current snapshot
// and dispatching registrations with the configured strategy.
package service

import (
	"context"

	"github.com/MKhiriev/webinar-landing/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConfigService loads the landing configuration.
type ConfigService interface {
	// Load never fails: on any problem it logs and returns the defaults.
	Load(ctx context.Context) models.LandingConfig
	// Refresh fetches the sheet and merges it over the defaults. Unlike Load
	// it reports a placeholder URL or a failed fetch as an error.
	Refresh(ctx context.Context) (models.LandingConfig, error)
}

// Dispatcher is one submission delivery strategy.
type Dispatcher interface {
	Mode() models.DispatchMode

	// RequiredFields lists the validators fields this strategy needs checked
	// before Dispatch is called.
	RequiredFields() []string

	// Dispatch delivers submission exactly once.
	Dispatch(ctx context.Context, submission models.Submission) (models.DispatchResult, error)
}

// RegistrationService validates a form against the active strategy and
// dispatches it.
type RegistrationService interface {
	Mode() models.DispatchMode

	// Validate runs the checks Submit runs first, without dispatching.
	Validate(ctx context.Context, form models.RegistrationForm) error

	Submit(ctx context.Context, cfg models.LandingConfig, form models.RegistrationForm) (models.DispatchResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
