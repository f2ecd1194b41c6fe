package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/landing"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/internal/service"
	"github.com/MKhiriev/webinar-landing/models"
)

type App struct {
	controller *landing.Controller
	view       View

	form    models.RegistrationForm
	hasForm bool
	build   models.AppBuildInfo

	logger *logger.Logger
}

func NewApp(controller *landing.Controller, view View, cfg *config.PreviewConfig, build models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if controller == nil || view == nil {
		return nil, ErrMissingDependencies
	}

	return &App{
		controller: controller,
		view:       view,
		form:       cfg.Form,
		hasForm:    cfg.HasForm(),
		build:      build,
		logger:     logger,
	}, nil
}

// Run prints the page and submits the configured form, if any. A sheet that
// cannot be fetched is reported with ShowError and the defaults are shown. A
// failed registration is already reported by the controller's alert and is
// only returned wrapped.
func (a *App) Run(ctx context.Context) error {
	if err := a.view.RenderBuildInfo(a.build); err != nil {
		return err
	}

	if _, err := a.controller.Refresh(ctx); err != nil {
		if errors.Is(err, service.ErrSheetNotConfigured) {
			a.logger.Info().Msg("sheet url is not configured, previewing defaults")
		} else {
			a.logger.Err(err).Msg("sheet refresh failed, previewing defaults")
			a.view.ShowError(err)
		}
	}

	if err := a.controller.Render(ctx, a.view); err != nil {
		return err
	}

	if !a.hasForm {
		a.logger.Info().Msg("no form given, preview finished")
		return nil
	}

	if err := a.controller.Submit(ctx, a.view, a.form); err != nil {
		return fmt.Errorf("submit registration: %w", err)
	}

	a.logger.Info().Str("mode", a.controller.Content().Mode.String()).Msg("preview registration sent")
	return nil
}
