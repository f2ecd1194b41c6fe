package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/internal/validators"
	"github.com/MKhiriev/webinar-landing/models"
)

type registrationService struct {
	dispatcher Dispatcher
	validator  validators.Validator

	logger *logger.Logger
}

func NewRegistrationService(dispatcher Dispatcher, logger *logger.Logger) RegistrationService {
	return &registrationService{
		dispatcher: dispatcher,
		validator:  validators.NewRegistrationValidator(),
		logger:     logger,
	}
}

func (s *registrationService) Mode() models.DispatchMode {
	return s.dispatcher.Mode()
}

func (s *registrationService) Validate(ctx context.Context, form models.RegistrationForm) error {
	return s.validator.Validate(ctx, form, s.dispatcher.RequiredFields()...)
}

// Submit validates form with the strategy's fields, snapshots cfg and hands
// the result to the strategy once. Validation errors are returned as they
// are; delivery errors are wrapped with ErrDispatchFailed.
func (s *registrationService) Submit(ctx context.Context, cfg models.LandingConfig, form models.RegistrationForm) (models.DispatchResult, error) {
	if err := s.Validate(ctx, form); err != nil {
		s.logger.Debug().Err(err).Str("mode", s.dispatcher.Mode().String()).Msg("registration rejected")
		return models.DispatchResult{}, fmt.Errorf("validate registration: %w", err)
	}

	submission := models.Submission{
		Form:            form,
		Webinar:         models.NewWebinarSnapshot(cfg),
		MessageTemplate: cfg.MessageTemplate(),
	}

	result, err := s.dispatcher.Dispatch(ctx, submission)
	if err != nil {
		s.logger.Err(err).Str("mode", s.dispatcher.Mode().String()).Msg("registration dispatch failed")
		return models.DispatchResult{}, fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	s.logger.Info().Str("mode", result.Mode.String()).Msg("registration dispatched")
	return result, nil
}
