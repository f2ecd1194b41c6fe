package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/internal/utils"
)

type httpSheetAdapter struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// NewHTTPSheetAdapter constructs a resty-backed [SheetAdapter] for
// sheetCfg.URL. The URL is not validated here: the config service decides
// whether it is usable before calling FetchSheet.
func NewHTTPSheetAdapter(sheetCfg config.Sheet, logger *logger.Logger) SheetAdapter {
	return &httpSheetAdapter{
		client: utils.NewHTTPClient(sheetCfg.RequestTimeout),
		url:    strings.TrimSpace(sheetCfg.URL),
		logger: logger,
	}
}

// FetchSheet implements [SheetAdapter].
func (s *httpSheetAdapter) FetchSheet(ctx context.Context) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1").
		Get(s.url)
	if err != nil {
		return "", fmt.Errorf("sheet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("sheet response: %w", err)
	}

	s.logger.Debug().
		Int("status", resp.StatusCode()).
		Int("size", len(resp.Body())).
		Msg("sheet downloaded")

	return string(resp.Body()), nil
}
