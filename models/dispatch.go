package models

import "fmt"

// DispatchMode selects how a registration leaves the landing page.
type DispatchMode string

const (
	// DispatchWebhook POSTs a JSON payload to a webhook.
	DispatchWebhook DispatchMode = "webhook"
	// DispatchWhatsApp builds a wa.me deep link the visitor opens in their own browser.
	DispatchWhatsApp DispatchMode = "whatsapp"
)

// ParseDispatchMode converts s into a [DispatchMode].
func ParseDispatchMode(s string) (DispatchMode, error) {
	switch DispatchMode(s) {
	case DispatchWebhook:
		return DispatchWebhook, nil
	case DispatchWhatsApp:
		return DispatchWhatsApp, nil
	default:
		return "", fmt.Errorf("unknown dispatch mode %q", s)
	}
}

func (m DispatchMode) String() string {
	return string(m)
}

// DispatchResult describes a successful dispatch.
type DispatchResult struct {
	Mode DispatchMode

	// RedirectURL is the deep link to open. Empty for webhook dispatches.
	RedirectURL string
}
