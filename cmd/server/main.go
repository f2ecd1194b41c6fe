package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/webinar-landing/internal/adapter"
	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/handler"
	"github.com/MKhiriev/webinar-landing/internal/landing"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/internal/server"
	"github.com/MKhiriev/webinar-landing/internal/service"
	"github.com/MKhiriev/webinar-landing/internal/workers"
	"github.com/MKhiriev/webinar-landing/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewLogger("landing-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	adapters, err := adapter.NewAdapters(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapters")
	}

	services, err := service.NewServices(adapters, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	controller := landing.NewController(services, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// the page is served only after the first load, defaults included
	controller.Load(ctx)

	handlers, err := handler.NewHandlers(services, controller, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(controller, cfg.Sheet, log).Run(ctx)

	srv.RunServer()
}
