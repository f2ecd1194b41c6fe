// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageContent(t *testing.T) {
	got := NewPageContent(DefaultLandingConfig(), DispatchWhatsApp)

	assert.Equal(t, PageContent{
		Title:       "Webinar: Estrategias de WhatsApp Marketing",
		Description: DefaultLandingConfig().Description(),
		Date:        "15/01/2026",
		Time:        "19:00",
		CTALabel:    "Reservar mi plaza ahora",
		Mode:        DispatchWhatsApp,
	}, got)
}

func TestNewPageContent_Fallbacks(t *testing.T) {
	got := NewPageContent(NewLandingConfig(map[string]string{KeyDate: ""}), DispatchWebhook)

	assert.Equal(t, PageContent{
		Title:       FallbackTitle,
		Description: FallbackDescription,
		Date:        FallbackDate,
		Time:        FallbackTime,
		CTALabel:    FallbackCTALabel,
		Mode:        DispatchWebhook,
	}, got)
}

func TestNewWebinarSnapshot(t *testing.T) {
	cfg := NewLandingConfig(map[string]string{KeyTitle: "T", KeyDate: "D", KeyTime: "H", KeyDescription: "ignored"})

	assert.Equal(t, WebinarSnapshot{Title: "T", Date: "D", Time: "H"}, NewWebinarSnapshot(cfg))
}

func TestSubmissionResponse_JSON(t *testing.T) {
	b, err := json.Marshal(SubmissionResponse{
		CloseModal: true,
		ResetForm:  true,
		Submit:     SubmitControl{Label: "Confirmar registro", Enabled: true},
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"closeModal":true,"resetForm":true,"submit":{"label":"Confirmar registro","enabled":true}}`, string(b))
}
