// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PageContent is the display-ready text of the landing page.
type PageContent struct {
	Title       string
	Description string
	Date        string
	Time        string
	CTALabel    string

	// Mode tells the page which follow-up to expect after a submit.
	Mode DispatchMode
}

// Texts shown when a display field is missing from the configuration.
const (
	FallbackTitle       = "Webinar sobre automatización con WhatsApp"
	FallbackDescription = "Descubre cómo aprovechar WhatsApp para mejorar tus resultados."
	FallbackDate        = "Fecha por definir"
	FallbackTime        = "Hora por definir"
	FallbackCTALabel    = "Reservar mi plaza"
)

// NewPageContent binds the display fields of cfg. Empty fields get the
// Fallback* texts.
func NewPageContent(cfg LandingConfig, mode DispatchMode) PageContent {
	return PageContent{
		Title:       orFallback(cfg.Title(), FallbackTitle),
		Description: orFallback(cfg.Description(), FallbackDescription),
		Date:        orFallback(cfg.Date(), FallbackDate),
		Time:        orFallback(cfg.Time(), FallbackTime),
		CTALabel:    orFallback(cfg.CTALabel(), FallbackCTALabel),
		Mode:        mode,
	}
}

func orFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// SubmitControl is the state of the form's submit button.
type SubmitControl struct {
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

// SubmissionResponse is returned to the browser after a submit. The page
// script applies it to the modal and the form.
type SubmissionResponse struct {
	Alerts     []string      `json:"alerts,omitempty"`
	CloseModal bool          `json:"closeModal"`
	ResetForm  bool          `json:"resetForm"`
	OpenURL    string        `json:"openUrl,omitempty"`
	Submit     SubmitControl `json:"submit"`
}
