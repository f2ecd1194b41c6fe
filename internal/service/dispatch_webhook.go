package service

import (
	"context"
	"time"

	"github.com/MKhiriev/webinar-landing/internal/adapter"
	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/internal/validators"
	"github.com/MKhiriev/webinar-landing/models"
)

// DefaultWebinarTitle replaces an empty title in webhook payloads.
const DefaultWebinarTitle = "Webinar Default"

type webhookDispatcher struct {
	adapter   adapter.WebhookAdapter
	sourceTag string
	now       func() time.Time

	logger *logger.Logger
}

// NewWebhookDispatcher returns the strategy that POSTs every registration to
// the webhook behind webhookAdapter.
func NewWebhookDispatcher(appCfg config.App, webhookAdapter adapter.WebhookAdapter, logger *logger.Logger) (Dispatcher, error) {
	if webhookAdapter == nil {
		return nil, ErrWebhookAdapterUnavailable
	}

	return &webhookDispatcher{
		adapter:   webhookAdapter,
		sourceTag: appCfg.SourceTag,
		now:       time.Now,
		logger:    logger,
	}, nil
}

func (d *webhookDispatcher) Mode() models.DispatchMode {
	return models.DispatchWebhook
}

func (d *webhookDispatcher) RequiredFields() []string {
	return []string{validators.FieldName, validators.FieldEmail, validators.FieldPhone, validators.FieldPhoneDigits}
}

func (d *webhookDispatcher) Dispatch(ctx context.Context, submission models.Submission) (models.DispatchResult, error) {
	payload := d.buildPayload(submission)

	if err := d.adapter.PostRegistration(ctx, payload); err != nil {
		return models.DispatchResult{}, err
	}

	return models.DispatchResult{Mode: models.DispatchWebhook}, nil
}

func (d *webhookDispatcher) buildPayload(submission models.Submission) models.WebhookPayload {
	contact := submission.Form.Channel
	if contact == "" {
		contact = models.ChannelWhatsApp
	}

	webinar := submission.Webinar
	if webinar.Title == "" {
		webinar.Title = DefaultWebinarTitle
	}

	return models.WebhookPayload{
		Name:              submission.Form.Name,
		Email:             submission.Form.Email,
		Phone:             submission.Form.Phone,
		ContactPreference: contact,
		Webinar:           webinar,
		RegistrationDate:  d.now().UTC().Format(time.RFC3339),
		Source:            d.sourceTag,
	}
}
