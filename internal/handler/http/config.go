package http

import (
	"net/http"

	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/internal/utils"
)

// getConfig returns the served configuration snapshot as a flat JSON object.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.controller.Config(), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write config")
	}
}
