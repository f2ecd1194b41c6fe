// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/webinar-landing/internal/landing"
	"github.com/MKhiriev/webinar-landing/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the client and returns once it is done or ctx is
	// cancelled.
	Run(ctx context.Context) error
}

// View is everything the preview prints: the landing page, the form
// callbacks and the extra panels the browser has no equivalent for.
type View interface {
	landing.PageView
	landing.FormView

	RenderBuildInfo(info models.AppBuildInfo) error
	ShowError(err error)
}
