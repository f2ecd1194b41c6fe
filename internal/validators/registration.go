package validators

import (
	"context"

	"github.com/MKhiriev/webinar-landing/internal/utils"
	"github.com/MKhiriev/webinar-landing/models"
)

// Field name constants used to scope registration validation.
const (
	// FieldName requires a non-empty visitor name.
	FieldName = "name"

	// FieldEmail requires a non-empty e-mail address. The format is not checked.
	FieldEmail = "email"

	// FieldPhone requires a non-empty phone number.
	FieldPhone = "phone"

	// FieldPhoneDigits requires at least utils.MinPhoneDigits digits in the
	// phone number once separators are stripped.
	FieldPhoneDigits = "phone_digits"

	// FieldChannel requires the contact channel to be WhatsApp.
	FieldChannel = "channel"
)

// RegistrationValidator validates [models.RegistrationForm] values.
type RegistrationValidator struct {
}

// NewRegistrationValidator constructs a new RegistrationValidator
// and returns it as the Validator interface.
func NewRegistrationValidator() Validator {
	return &RegistrationValidator{}
}

// Validate checks a models.RegistrationForm (value or pointer).
//
// Without fields only the presence of name, email and phone is checked.
// Presence rules are evaluated before the others regardless of the order in
// fields, so a form with an empty field always reports
// ErrMissingRequiredFields first.
func (v *RegistrationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationForm:
		return v.validateForm(ctx, value, fields...)
	case *models.RegistrationForm:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateForm(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RegistrationValidator) validateForm(_ context.Context, form models.RegistrationForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPhone}
	}

	var presence, rules []string
	for _, f := range fields {
		switch f {
		case FieldName, FieldEmail, FieldPhone:
			presence = append(presence, f)
		case FieldPhoneDigits, FieldChannel:
			rules = append(rules, f)
		default:
			return ErrUnknownField
		}
	}

	for _, f := range presence {
		var value string
		switch f {
		case FieldName:
			value = form.Name
		case FieldEmail:
			value = form.Email
		case FieldPhone:
			value = form.Phone
		}
		if value == "" {
			return ErrMissingRequiredFields
		}
	}

	for _, f := range rules {
		switch f {
		case FieldPhoneDigits:
			if !utils.HasMinPhoneDigits(form.Phone) {
				return ErrPhoneTooShort
			}
		case FieldChannel:
			if form.Channel != models.ChannelWhatsApp {
				return ErrUnsupportedChannel
			}
		}
	}

	return nil
}
