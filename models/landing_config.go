// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"
)

// Keys of the landing configuration as they appear in the remote sheet.
const (
	KeyTitle           = "webinar_titulo"
	KeyDescription     = "webinar_descripcion"
	KeyDate            = "webinar_fecha"
	KeyTime            = "webinar_hora"
	KeyCTALabel        = "webinar_cta_texto"
	KeyMessageTemplate = "whatsapp_mensaje_bienvenida"
)

var defaultLandingValues = map[string]string{
	KeyTitle:       "Webinar: Estrategias de WhatsApp Marketing",
	KeyDescription: "Aprende a automatizar tus ventas y mejorar la atención al cliente con WhatsApp y herramientas No-Code.",
	KeyDate:        "15/01/2026",
	KeyTime:        "19:00",
	KeyCTALabel:    "Reservar mi plaza ahora",
	KeyMessageTemplate: "Hola {{nombre}}, te has apuntado al webinar \"{{webinar_titulo}}\" que se celebrará el {{webinar_fecha}} a las {{webinar_hora}}.\n\n" +
		"Este es tu enlace de acceso: https://ejemplo.com/webinar-directo",
}

// LandingConfig is an immutable flat mapping of display texts and the
// message template. Every value is an opaque string: the date and time are
// shown as they were typed in the sheet and never parsed.
//
// The zero value is an empty configuration. Use [DefaultLandingConfig] or
// [NewLandingConfig] to build one.
type LandingConfig struct {
	values map[string]string
}

// NewLandingConfig copies values into a new configuration. Later changes to
// values do not affect the returned configuration.
func NewLandingConfig(values map[string]string) LandingConfig {
	return LandingConfig{values: maps.Clone(values)}
}

// DefaultLandingConfig returns a fresh copy of the built-in configuration
// used whenever the remote sheet is unavailable.
func DefaultLandingConfig() LandingConfig {
	return NewLandingConfig(defaultLandingValues)
}

// Get returns the value stored under key and whether it was present.
func (c LandingConfig) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Values returns a copy of all key/value pairs.
func (c LandingConfig) Values() map[string]string {
	if c.values == nil {
		return map[string]string{}
	}
	return maps.Clone(c.values)
}

// Len reports the number of keys in the configuration.
func (c LandingConfig) Len() int {
	return len(c.values)
}

func (c LandingConfig) Title() string           { return c.values[KeyTitle] }
func (c LandingConfig) Description() string     { return c.values[KeyDescription] }
func (c LandingConfig) Date() string            { return c.values[KeyDate] }
func (c LandingConfig) Time() string            { return c.values[KeyTime] }
func (c LandingConfig) CTALabel() string        { return c.values[KeyCTALabel] }
func (c LandingConfig) MessageTemplate() string { return c.values[KeyMessageTemplate] }

// MarshalJSON encodes the configuration as a flat JSON object.
func (c LandingConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Values())
}
