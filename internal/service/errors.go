package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrSheetNotConfigured = errors.New("sheet url is not configured")

	ErrDispatchFailed            = errors.New("registration dispatch failed")
	ErrInvalidDestinationNumber  = errors.New("whatsapp destination number is missing or invalid")
	ErrWebhookAdapterUnavailable = errors.New("webhook adapter is not configured")
)
