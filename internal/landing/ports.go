// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package landing drives the landing page: it loads the configuration, hands
// the display texts to a [PageView] and runs registration submits against a
// [FormView].
//
// The views are presentation ports. The HTML handlers and the terminal
// preview implement them, and tests use in-memory fakes.
package landing

import (
	"context"

	"github.com/MKhiriev/webinar-landing/models"
)

// PageView displays the landing page texts.
type PageView interface {
	RenderPage(ctx context.Context, content models.PageContent) error
}

// FormView is the registration modal and its form.
type FormView interface {
	// ShowAlert shows msg to the visitor.
	ShowAlert(msg string)

	// CloseModal hides the registration modal.
	CloseModal()

	// ResetForm clears every form field.
	ResetForm()

	// OpenLink opens url outside the page, e.g. a chat deep link.
	OpenLink(url string)

	// SubmitControl returns the current state of the submit button.
	SubmitControl() models.SubmitControl

	// SetSubmitControl changes the submit button.
	SetSubmitControl(control models.SubmitControl)
}
