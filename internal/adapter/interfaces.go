// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP clients of the landing service.
//
// [SheetAdapter] downloads the remote spreadsheet export holding the page
// texts, and [WebhookAdapter] delivers registration payloads. Both are backed
// by resty. Non-2xx responses are mapped by mapHTTPError to the sentinel
// errors in errors.go so callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrInternalServerError] for 500).
package adapter

import (
	"context"

	"github.com/MKhiriev/webinar-landing/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SheetAdapter fetches the raw body of the remote configuration sheet.
type SheetAdapter interface {
	// FetchSheet issues a single GET to the sheet URL and returns the body.
	// A transport failure or non-2xx status is returned as an error.
	FetchSheet(ctx context.Context) (string, error)
}

// WebhookAdapter delivers registration payloads to the configured webhook.
type WebhookAdapter interface {
	// PostRegistration POSTs payload as JSON. A transport failure or non-2xx
	// status is returned as an error. The call is never retried.
	PostRegistration(ctx context.Context, payload models.WebhookPayload) error
}
