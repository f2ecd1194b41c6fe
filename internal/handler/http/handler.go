package http

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/landing"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/internal/service"
)

//go:embed web/templates/*.html.tmpl web/static/*
var webFS embed.FS

type Handler struct {
	controller *landing.Controller
	services   *service.Services

	page           *template.Template
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, controller *landing.Controller, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	page, err := template.ParseFS(webFS, "web/templates/landing.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse landing template: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		controller:     controller,
		services:       services,
		page:           page,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}, nil
}
