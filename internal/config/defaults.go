package config

// PlaceholderSheetURL marks a sheet address that has not been configured yet.
const PlaceholderSheetURL = "PLACEHOLDER_URL"

const (
	defaultVersion         = "dev"
	defaultSourceTag       = "landing-page"
	defaultHTTPAddress     = "localhost:8080"
	defaultDispatchMode    = "webhook"
	defaultWhatsAppBaseURL = "https://wa.me"
	defaultPreviewLogFile  = "landing-preview.log"
	defaultPreviewChannel  = "whatsapp"
)

// defaultConfig is merged last and therefore only fills fields no other
// source has set. Timeouts stay zero so the transport defaults apply.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:   defaultVersion,
			SourceTag: defaultSourceTag,
		},
		Server: Server{
			HTTPAddress: defaultHTTPAddress,
		},
		Sheet: Sheet{
			URL: PlaceholderSheetURL,
		},
		Dispatch: Dispatch{
			Mode:            defaultDispatchMode,
			WhatsAppBaseURL: defaultWhatsAppBaseURL,
		},
		Preview: Preview{
			LogFile: defaultPreviewLogFile,
			Channel: defaultPreviewChannel,
		},
	}
}
