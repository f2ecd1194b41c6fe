// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// landing service. It is populated by merging values from environment
// variables, command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Sheet describes the remote spreadsheet export holding the page texts.
	Sheet Sheet `envPrefix:"SHEET_"`

	// Dispatch selects and configures the registration delivery strategy.
	Dispatch Dispatch `envPrefix:"DISPATCH_"`

	// Preview holds the inputs of the terminal preview command.
	Preview Preview `envPrefix:"PREVIEW_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// SourceTag is sent as "source" in every webhook payload.
	// Env: APP_SOURCE_TAG
	SourceTag string `env:"SOURCE_TAG"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds how long a single inbound request may take.
	// Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sheet holds settings of the remote configuration source.
type Sheet struct {
	// URL of the CSV export. An empty value or one containing
	// [PlaceholderSheetURL] disables remote loading.
	// Env: SHEET_URL
	URL string `env:"URL"`

	// RequestTimeout bounds the sheet download. Zero leaves the transport
	// default in place.
	// Env: SHEET_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RefreshInterval re-reads the sheet periodically. Zero loads it once at
	// start-up.
	// Env: SHEET_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Dispatch holds settings of the registration delivery strategies.
type Dispatch struct {
	// Mode is either "webhook" or "whatsapp".
	// Env: DISPATCH_MODE
	Mode string `env:"MODE"`

	// WebhookURL receives the JSON registration payload in webhook mode.
	// Env: DISPATCH_WEBHOOK_URL
	WebhookURL string `env:"WEBHOOK_URL"`

	// WebhookSigningKey, when set, signs each payload with HMAC-SHA256 and
	// sends the hex digest in the HashSHA256 header.
	// Env: DISPATCH_WEBHOOK_SIGNING_KEY
	WebhookSigningKey string `env:"WEBHOOK_SIGNING_KEY"`

	// RequestTimeout bounds the webhook call. Zero leaves the transport
	// default in place.
	// Env: DISPATCH_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// WhatsAppBaseURL is the deep-link base, "https://wa.me" by default.
	// Env: DISPATCH_WHATSAPP_BASE_URL
	WhatsAppBaseURL string `env:"WHATSAPP_BASE_URL"`

	// WhatsAppNumber is the destination number in whatsapp mode.
	// Env: DISPATCH_WHATSAPP_NUMBER
	WhatsAppNumber string `env:"WHATSAPP_NUMBER"`
}

// Preview holds settings only read by the terminal preview command.
type Preview struct {
	// LogFile receives the preview logs so stdout stays reserved for the
	// rendered page.
	// Env: PREVIEW_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Name, Email, Phone and Channel fill the registration form. When Name
	// is empty the preview only renders the page.
	// Env: PREVIEW_NAME, PREVIEW_EMAIL, PREVIEW_PHONE, PREVIEW_CHANNEL
	Name    string `env:"NAME"`
	Email   string `env:"EMAIL"`
	Phone   string `env:"PHONE"`
	Channel string `env:"CHANNEL"`
}

// GetStructuredConfig loads, merges, and validates the service
// configuration from all available sources.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
