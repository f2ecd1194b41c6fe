package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates missing or malformed listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSheetConfigs indicates a negative timeout or refresh interval
	// for the remote sheet.
	ErrInvalidSheetConfigs = errors.New("invalid sheet configuration")
	// ErrInvalidDispatchConfigs indicates an unknown dispatch mode or missing
	// settings for the selected mode (webhook URL, WhatsApp number).
	ErrInvalidDispatchConfigs = errors.New("invalid dispatch configuration")
	// ErrInvalidAppConfigs indicates missing application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidPreviewConfigs indicates a terminal preview without a log file.
	ErrInvalidPreviewConfigs = errors.New("invalid preview configuration")
)
