// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/webinar-landing/internal/adapter"
	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/internal/mock"
	"github.com/MKhiriev/webinar-landing/internal/validators"
	"github.com/MKhiriev/webinar-landing/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, time.January, 10, 11, 30, 0, 0, time.FixedZone("CET", 3600))

func newTestWebhookDispatcher(t *testing.T, ctrl *gomock.Controller) (*webhookDispatcher, *mock.MockWebhookAdapter) {
	t.Helper()
	mockWebhook := mock.NewMockWebhookAdapter(ctrl)

	d, err := NewWebhookDispatcher(config.App{SourceTag: "landing-page"}, mockWebhook, logger.Nop())
	require.NoError(t, err)

	wd := d.(*webhookDispatcher)
	wd.now = func() time.Time { return fixedNow }
	return wd, mockWebhook
}

func testSubmission() models.Submission {
	return models.Submission{
		Form: models.RegistrationForm{
			Name:    "Ana",
			Email:   "ana@example.com",
			Phone:   "12-34-56-78",
			Channel: models.ChannelWhatsApp,
		},
		Webinar: models.WebinarSnapshot{
			Title: "Mi webinar",
			Date:  "15/01/2026",
			Time:  "19:00",
		},
		MessageTemplate: "Hola {{nombre}}",
	}
}

func TestNewWebhookDispatcher_NilAdapter(t *testing.T) {
	d, err := NewWebhookDispatcher(config.App{}, nil, logger.Nop())

	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrWebhookAdapterUnavailable)
}

func TestWebhookDispatcher_ModeAndFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	d, _ := newTestWebhookDispatcher(t, ctrl)

	assert.Equal(t, models.DispatchWebhook, d.Mode())
	assert.Contains(t, d.RequiredFields(), validators.FieldPhoneDigits)
	assert.NotContains(t, d.RequiredFields(), validators.FieldChannel)
}

func TestWebhookDispatcher_Dispatch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, mockWebhook := newTestWebhookDispatcher(t, ctrl)
	ctx := context.Background()

	mockWebhook.EXPECT().PostRegistration(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.WebhookPayload) error {
			assert.Equal(t, models.WebhookPayload{
				Name:              "Ana",
				Email:             "ana@example.com",
				Phone:             "12-34-56-78",
				ContactPreference: "whatsapp",
				Webinar: models.WebinarSnapshot{
					Title: "Mi webinar",
					Date:  "15/01/2026",
					Time:  "19:00",
				},
				RegistrationDate: "2026-01-10T10:30:00Z",
				Source:           "landing-page",
			}, p)
			return nil
		},
	)

	result, err := d.Dispatch(ctx, testSubmission())

	require.NoError(t, err)
	assert.Equal(t, models.DispatchResult{Mode: models.DispatchWebhook}, result)
}

func TestWebhookDispatcher_Dispatch_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, mockWebhook := newTestWebhookDispatcher(t, ctrl)

	submission := testSubmission()
	submission.Form.Channel = ""
	submission.Webinar.Title = ""

	mockWebhook.EXPECT().PostRegistration(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.WebhookPayload) error {
			assert.Equal(t, "whatsapp", p.ContactPreference)
			assert.Equal(t, DefaultWebinarTitle, p.Webinar.Title)
			return nil
		},
	)

	_, err := d.Dispatch(context.Background(), submission)
	require.NoError(t, err)
}

func TestWebhookDispatcher_Dispatch_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, mockWebhook := newTestWebhookDispatcher(t, ctrl)
	mockWebhook.EXPECT().PostRegistration(gomock.Any(), gomock.Any()).
		Return(adapter.ErrInternalServerError).
		Times(1)

	result, err := d.Dispatch(context.Background(), testSubmission())

	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.Empty(t, result.RedirectURL)
}
