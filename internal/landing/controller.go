package landing

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/webinar-landing/internal/app"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/internal/service"
	"github.com/MKhiriev/webinar-landing/internal/validators"
	"github.com/MKhiriev/webinar-landing/models"
)

// Controller binds the current configuration snapshot to the views.
type Controller struct {
	configService       service.ConfigService
	configStore         *service.ConfigStore
	registrationService service.RegistrationService

	logger *logger.Logger
}

func NewController(services *service.Services, logger *logger.Logger) *Controller {
	return &Controller{
		configService:       services.ConfigService,
		configStore:         services.ConfigStore,
		registrationService: services.RegistrationService,
		logger:              logger,
	}
}

// Load fetches the configuration and makes it the served snapshot. It never
// fails: the config service falls back to the defaults.
func (c *Controller) Load(ctx context.Context) models.LandingConfig {
	cfg := c.configService.Load(ctx)
	c.configStore.Replace(cfg)
	return cfg
}

// Refresh reloads the sheet and replaces the served snapshot only when the
// fetch succeeded. On failure the current snapshot stays and the error is
// returned.
func (c *Controller) Refresh(ctx context.Context) (models.LandingConfig, error) {
	cfg, err := c.configService.Refresh(ctx)
	if err != nil {
		return c.configStore.Current(), err
	}
	c.configStore.Replace(cfg)
	return cfg, nil
}

// Config returns the served snapshot.
func (c *Controller) Config() models.LandingConfig {
	return c.configStore.Current()
}

// Content returns the display texts of the served snapshot.
func (c *Controller) Content() models.PageContent {
	return models.NewPageContent(c.configStore.Current(), c.registrationService.Mode())
}

// Render shows the served snapshot on view.
func (c *Controller) Render(ctx context.Context, view PageView) error {
	if err := view.RenderPage(ctx, c.Content()); err != nil {
		return fmt.Errorf("render landing page: %w", err)
	}
	return nil
}

// Submit runs one registration attempt and reports the outcome on view.
//
// A validation failure only shows an alert. Otherwise the submit control is
// disabled and relabelled while the registration is dispatched and restored
// afterwards in every case. On success the modal is closed and the form
// reset; on failure the form keeps its values. The returned error is the one
// from the registration service, already reported on view.
func (c *Controller) Submit(ctx context.Context, view FormView, form models.RegistrationForm) error {
	cfg := c.configStore.Current()

	if err := c.registrationService.Validate(ctx, form); err != nil {
		view.ShowAlert(validationMessage(err))
		return err
	}

	original := view.SubmitControl()
	view.SetSubmitControl(models.SubmitControl{Label: app.MsgSubmitting, Enabled: false})
	defer view.SetSubmitControl(original)

	result, err := c.registrationService.Submit(ctx, cfg, form)
	if err != nil {
		if isValidationError(err) {
			view.ShowAlert(validationMessage(err))
			return err
		}
		c.logger.Err(err).Msg("registration was not delivered")
		view.ShowAlert(app.MsgRegistrationFailed)
		return err
	}

	switch result.Mode {
	case models.DispatchWhatsApp:
		view.OpenLink(result.RedirectURL)
	default:
		view.ShowAlert(app.MsgRegistrationSucceeded)
	}
	view.CloseModal()
	view.ResetForm()

	return nil
}

func isValidationError(err error) bool {
	return errors.Is(err, validators.ErrMissingRequiredFields) ||
		errors.Is(err, validators.ErrPhoneTooShort) ||
		errors.Is(err, validators.ErrUnsupportedChannel)
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, validators.ErrPhoneTooShort):
		return app.MsgInvalidPhone
	case errors.Is(err, validators.ErrUnsupportedChannel):
		return app.MsgUnsupportedChannel
	default:
		return app.MsgMissingRequiredFields
	}
}
