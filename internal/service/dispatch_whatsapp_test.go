// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/internal/validators"
	"github.com/MKhiriev/webinar-landing/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWhatsAppDispatcher_RequiresNumber(t *testing.T) {
	tests := []string{"", "PLACEHOLDER_NUMBER", "+34 600 000 000", "1234567", "abc12345678"}

	for _, number := range tests {
		t.Run(number, func(t *testing.T) {
			d, err := NewWhatsAppDispatcher(config.Dispatch{WhatsAppNumber: number}, logger.Nop())

			assert.Nil(t, d)
			assert.ErrorIs(t, err, ErrInvalidDestinationNumber)
		})
	}
}

func TestWhatsAppDispatcher_ModeAndFields(t *testing.T) {
	d, err := NewWhatsAppDispatcher(config.Dispatch{WhatsAppNumber: "34600000000"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, models.DispatchWhatsApp, d.Mode())
	assert.Contains(t, d.RequiredFields(), validators.FieldChannel)
	assert.NotContains(t, d.RequiredFields(), validators.FieldPhoneDigits)
}

func TestWhatsAppDispatcher_Dispatch_BuildsLink(t *testing.T) {
	d, err := NewWhatsAppDispatcher(config.Dispatch{
		WhatsAppBaseURL: "https://wa.me/",
		WhatsAppNumber:  "+34600000000",
	}, logger.Nop())
	require.NoError(t, err)

	submission := testSubmission()
	submission.MessageTemplate = `Hola {{nombre}}, te esperamos en "{{webinar_titulo}}" el {{webinar_fecha}} a las {{webinar_hora}}.{{sin_valor}}`

	result, err := d.Dispatch(context.Background(), submission)
	require.NoError(t, err)

	assert.Equal(t, models.DispatchWhatsApp, result.Mode)
	require.True(t, strings.HasPrefix(result.RedirectURL, "https://wa.me/34600000000?text="))

	encoded := strings.TrimPrefix(result.RedirectURL, "https://wa.me/34600000000?text=")
	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, " ")
	assert.Contains(t, encoded, "Hola%20Ana")

	decoded, err := url.QueryUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, `Hola Ana, te esperamos en "Mi webinar" el 15/01/2026 a las 19:00.`, decoded)
}

func TestWhatsAppDispatcher_Dispatch_DefaultBaseURL(t *testing.T) {
	d, err := NewWhatsAppDispatcher(config.Dispatch{WhatsAppNumber: "34600000000"}, logger.Nop())
	require.NoError(t, err)

	result, err := d.Dispatch(context.Background(), testSubmission())
	require.NoError(t, err)

	assert.Equal(t, "https://wa.me/34600000000?text=Hola%20Ana", result.RedirectURL)
}

func TestUnboundPlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []string
	}{
		{"all bound", "{{nombre}} {{webinar_titulo}} {{webinar_fecha}} {{webinar_hora}}", nil},
		{"no tokens", "Hola", nil},
		{"unknown once", "Hola {{nombre}} de {{ciudad}} y {{ciudad}}", []string{"ciudad"}},
		{"several unknown", "{{a}}{{nombre}}{{b}}", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, unboundPlaceholders(tt.template))
		})
	}
}

func TestEncodeMessage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a b", "a%20b"},
		{"1+1", "1%2B1"},
		{"línea\nnueva", "l%C3%ADnea%0Anueva"},
		{"&?=#", "%26%3F%3D%23"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeMessage(tt.in))
		})
	}
}
