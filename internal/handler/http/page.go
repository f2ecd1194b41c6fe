package http

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/MKhiriev/webinar-landing/internal/app"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/models"
)

// pageData is the model of landing.html.tmpl.
type pageData struct {
	models.PageContent

	SubmitLabel string
	Channel     string
}

// htmlPageView renders the landing template into w.
type htmlPageView struct {
	w    io.Writer
	tmpl *template.Template
}

func (v *htmlPageView) RenderPage(_ context.Context, content models.PageContent) error {
	err := v.tmpl.Execute(v.w, pageData{
		PageContent: content,
		SubmitLabel: app.MsgSubmitLabel,
		Channel:     models.ChannelWhatsApp,
	})
	if err != nil {
		return fmt.Errorf("execute landing template: %w", err)
	}
	return nil
}

func (h *Handler) landingPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// buffered so a template error never leaves a half-written page
	var buf bytes.Buffer
	if err := h.controller.Render(r.Context(), &htmlPageView{w: &buf, tmpl: h.page}); err != nil {
		log.Err(err).Msg("landing page rendering failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
