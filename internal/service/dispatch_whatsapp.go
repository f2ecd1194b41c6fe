package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/internal/message"
	"github.com/MKhiriev/webinar-landing/internal/utils"
	"github.com/MKhiriev/webinar-landing/internal/validators"
	"github.com/MKhiriev/webinar-landing/models"
)

const defaultWhatsAppBaseURL = "https://wa.me"

// Bindings available to the welcome message template.
const (
	BindingName         = "nombre"
	BindingWebinarTitle = models.KeyTitle
	BindingWebinarDate  = models.KeyDate
	BindingWebinarTime  = models.KeyTime
)

type whatsappDispatcher struct {
	baseURL string
	number  string

	logger *logger.Logger
}

// NewWhatsAppDispatcher returns the strategy that builds a pre-filled chat
// link. It refuses to start without an explicit destination number.
func NewWhatsAppDispatcher(dispatchCfg config.Dispatch, logger *logger.Logger) (Dispatcher, error) {
	if !utils.IsDestinationNumber(dispatchCfg.WhatsAppNumber) {
		return nil, ErrInvalidDestinationNumber
	}

	baseURL := strings.TrimRight(strings.TrimSpace(dispatchCfg.WhatsAppBaseURL), "/")
	if baseURL == "" {
		baseURL = defaultWhatsAppBaseURL
	}

	return &whatsappDispatcher{
		baseURL: baseURL,
		number:  strings.TrimPrefix(strings.TrimSpace(dispatchCfg.WhatsAppNumber), "+"),
		logger:  logger,
	}, nil
}

func (d *whatsappDispatcher) Mode() models.DispatchMode {
	return models.DispatchWhatsApp
}

func (d *whatsappDispatcher) RequiredFields() []string {
	return []string{validators.FieldName, validators.FieldEmail, validators.FieldPhone, validators.FieldChannel}
}

// Dispatch makes no network call: the visitor sends the message themselves.
func (d *whatsappDispatcher) Dispatch(_ context.Context, submission models.Submission) (models.DispatchResult, error) {
	if unbound := unboundPlaceholders(submission.MessageTemplate); len(unbound) > 0 {
		d.logger.Warn().
			Strs("placeholders", unbound).
			Msg("message template references unknown placeholders, rendering them empty")
	}

	text := message.Render(submission.MessageTemplate, map[string]string{
		BindingName:         submission.Form.Name,
		BindingWebinarTitle: submission.Webinar.Title,
		BindingWebinarDate:  submission.Webinar.Date,
		BindingWebinarTime:  submission.Webinar.Time,
	})

	return models.DispatchResult{
		Mode:        models.DispatchWhatsApp,
		RedirectURL: d.baseURL + "/" + d.number + "?text=" + encodeMessage(text),
	}, nil
}

// unboundPlaceholders lists the tokens of template that no binding fills.
func unboundPlaceholders(template string) []string {
	var unbound []string
	for _, name := range message.Placeholders(template) {
		switch name {
		case BindingName, BindingWebinarTitle, BindingWebinarDate, BindingWebinarTime:
		default:
			unbound = append(unbound, name)
		}
	}
	return unbound
}

// encodeMessage percent-encodes text for a query value, spaces as %20.
func encodeMessage(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
