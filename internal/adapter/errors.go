package adapter

import "errors"

// Sentinel errors returned by mapHTTPError for non-2xx responses. They are
// wrapped together with the response body, so callers match them with
// [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected http status")

	ErrInvalidURL = errors.New("invalid url")
)
