package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingRequiredFields = errors.New("name, email and phone are required")
	ErrPhoneTooShort         = errors.New("phone number has too few digits")
	ErrUnsupportedChannel    = errors.New("unsupported contact channel")
)
