// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChannelWhatsApp is the only contact channel offered by the registration
// form.
const ChannelWhatsApp = "whatsapp"

// RegistrationForm holds the raw values typed by the visitor.
type RegistrationForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Channel string `json:"channel"`
}

// WebinarSnapshot copies the display fields of the configuration that was
// active when the form was submitted.
type WebinarSnapshot struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// NewWebinarSnapshot extracts the webinar display fields from cfg.
func NewWebinarSnapshot(cfg LandingConfig) WebinarSnapshot {
	return WebinarSnapshot{
		Title: cfg.Title(),
		Date:  cfg.Date(),
		Time:  cfg.Time(),
	}
}

// Submission is built once per form submit and handed to a dispatcher.
// It is never stored or retried.
type Submission struct {
	Form    RegistrationForm
	Webinar WebinarSnapshot

	// MessageTemplate is the template active at submit time. Only the
	// WhatsApp dispatcher reads it.
	MessageTemplate string
}

// WebhookPayload is the JSON document POSTed to the registration webhook.
type WebhookPayload struct {
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	ContactPreference string          `json:"contactPreference"`
	Webinar           WebinarSnapshot `json:"webinar"`
	RegistrationDate  string          `json:"registrationDate"`
	Source            string          `json:"source"`
}
