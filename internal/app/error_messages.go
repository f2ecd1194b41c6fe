// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// landing page controller and the HTTP handlers.
//
// All Msg* constants are visitor-facing strings shown as alerts after a
// registration attempt, or plain-text bodies written by the handlers. Keeping
// them in one place keeps the wording consistent between the HTML page and
// the terminal preview.
package app

const (
	// MsgMissingRequiredFields is shown when name, email or phone is empty.
	MsgMissingRequiredFields = "Por favor, rellena todos los campos obligatorios."

	// MsgInvalidPhone is shown when the phone number has fewer than eight
	// digits once separators are removed.
	MsgInvalidPhone = "Por favor, introduce un número de teléfono válido (mínimo 8 dígitos)."

	// MsgUnsupportedChannel is shown when a channel other than WhatsApp is
	// selected in WhatsApp mode.
	MsgUnsupportedChannel = "Por favor, selecciona WhatsApp como canal de contacto."

	// MsgRegistrationSucceeded confirms a webhook registration.
	MsgRegistrationSucceeded = "¡Gracias por registrarte! En breve recibirás un mensaje por WhatsApp con la información del webinar."

	// MsgRegistrationFailed is shown when the registration could not be
	// delivered. The form stays filled in so the visitor can try again.
	MsgRegistrationFailed = "Ha ocurrido un problema al registrar tu asistencia. Por favor, inténtalo de nuevo en unos minutos."

	// MsgSubmitLabel is the idle label of the registration submit button.
	MsgSubmitLabel = "Confirmar registro"

	// MsgSubmitting replaces the submit button label while a registration is
	// in flight.
	MsgSubmitting = "Enviando..."

	// MsgInvalidDataProvided is returned when a request body cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
