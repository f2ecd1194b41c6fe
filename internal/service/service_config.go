package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"dario.cat/mergo"
	"github.com/MKhiriev/webinar-landing/internal/adapter"
	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/models"
)

var rowSeparator = regexp.MustCompile(`\r?\n`)

type configService struct {
	sheetURL string
	adapter  adapter.SheetAdapter

	logger *logger.Logger
}

// NewConfigService returns a [ConfigService] reading the sheet through
// sheetAdapter. sheetCfg.URL is only inspected for placeholders.
func NewConfigService(sheetCfg config.Sheet, sheetAdapter adapter.SheetAdapter, logger *logger.Logger) ConfigService {
	return &configService{
		sheetURL: strings.TrimSpace(sheetCfg.URL),
		adapter:  sheetAdapter,
		logger:   logger,
	}
}

func (s *configService) Load(ctx context.Context) models.LandingConfig {
	cfg, err := s.Refresh(ctx)
	if err != nil {
		if errors.Is(err, ErrSheetNotConfigured) {
			s.logger.Warn().Msg("sheet url is not configured, using default landing config")
		} else {
			s.logger.Err(err).Msg("failed to load landing config, using defaults")
		}
		return models.DefaultLandingConfig()
	}
	return cfg
}

func (s *configService) Refresh(ctx context.Context) (models.LandingConfig, error) {
	if isPlaceholderURL(s.sheetURL) {
		return models.LandingConfig{}, ErrSheetNotConfigured
	}

	body, err := s.adapter.FetchSheet(ctx)
	if err != nil {
		return models.LandingConfig{}, fmt.Errorf("fetch landing config: %w", err)
	}

	parsed := ParseSheet(body)

	merged := models.DefaultLandingConfig().Values()
	if err = mergo.Merge(&merged, parsed, mergo.WithOverride); err != nil {
		return models.LandingConfig{}, fmt.Errorf("merge landing config: %w", err)
	}

	s.logger.Info().
		Int("remote_keys", len(parsed)).
		Int("total_keys", len(merged)).
		Msg("landing config loaded")

	return models.NewLandingConfig(merged), nil
}

// ParseSheet reads newline-delimited "key,value" rows. The first comma splits
// the key from the value, further commas stay in the value. Rows that are
// blank, have no comma, or have an empty key or value are skipped. When a key
// repeats, the last row wins.
//
// A header row is not recognised and ends up as an ordinary key.
func ParseSheet(body string) map[string]string {
	values := make(map[string]string)

	for _, row := range rowSeparator.Split(body, -1) {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}

		key, value, found := strings.Cut(row, ",")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}

		values[key] = value
	}

	return values
}

func isPlaceholderURL(url string) bool {
	return url == "" || strings.Contains(url, config.PlaceholderSheetURL)
}
