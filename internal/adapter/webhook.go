package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/internal/utils"
	"github.com/MKhiriev/webinar-landing/models"
)

// SignatureHeader carries the hex HMAC-SHA256 of the request body when a
// signing key is configured.
const SignatureHeader = "HashSHA256"

type httpWebhookAdapter struct {
	client *utils.HTTPClient
	url    string

	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPWebhookAdapter constructs a resty-backed [WebhookAdapter] posting to
// dispatchCfg.WebhookURL. When dispatchCfg.WebhookSigningKey is set every
// body is signed with HMAC-SHA256.
//
// Returns [ErrInvalidURL] (wrapped) if the webhook URL is not an absolute
// http(s) URL.
func NewHTTPWebhookAdapter(dispatchCfg config.Dispatch, logger *logger.Logger) (WebhookAdapter, error) {
	webhookURL, err := normalizeURL(dispatchCfg.WebhookURL)
	if err != nil {
		return nil, fmt.Errorf("webhook url: %w", err)
	}

	a := &httpWebhookAdapter{
		client: utils.NewHTTPClient(dispatchCfg.RequestTimeout),
		url:    webhookURL,
		logger: logger,
	}
	if dispatchCfg.WebhookSigningKey != "" {
		a.hasher = utils.NewHasher(dispatchCfg.WebhookSigningKey)
	}

	return a, nil
}

// PostRegistration implements [WebhookAdapter].
func (w *httpWebhookAdapter) PostRegistration(ctx context.Context, payload models.WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req := w.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if w.hasher != nil {
		req.SetHeader(SignatureHeader, w.hasher.HexSum(body))
	}

	resp, err := req.Post(w.url)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("webhook response: %w", err)
	}

	w.logger.Debug().
		Int("status", resp.StatusCode()).
		Msg("registration delivered to webhook")

	return nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: address must include http(s) scheme and host", ErrInvalidURL)
	}

	return u.String(), nil
}
