package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/webinar-landing/internal/adapter"
	"github.com/MKhiriev/webinar-landing/internal/client"
	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/landing"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/internal/service"
	"github.com/MKhiriev/webinar-landing/internal/tui"
	"github.com/MKhiriev/webinar-landing/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetPreviewConfig()
	if err != nil {
		logger.NewLogger("landing-preview").Fatal().Err(err).Msg("error getting configs")
	}

	// stdout is reserved for the rendered page
	log := logger.NewFileLogger("landing-preview", cfg.LogFile)

	adapters, err := adapter.NewAdapters(cfg.Structured(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create adapters")
	}

	services, err := service.NewServices(adapters, cfg.Structured(), build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	app, err := client.NewApp(landing.NewController(services, log), tui.New(os.Stdout, log), cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init preview app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("preview run error")
		stop()
		os.Exit(1)
	}
}
