package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/webinar-landing/internal/service"
	"github.com/MKhiriev/webinar-landing/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrMissingRequiredFields: http.StatusBadRequest,
	validators.ErrPhoneTooShort:         http.StatusBadRequest,
	validators.ErrUnsupportedChannel:    http.StatusBadRequest,
	validators.ErrUnsupportedType:       http.StatusBadRequest,

	ErrInvalidBody:            http.StatusBadRequest,
	ErrUnsupportedContentType: http.StatusUnsupportedMediaType,

	service.ErrDispatchFailed: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
