package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
type StructuredJSONConfig struct {
	App struct {
		Version   string `json:"version"`
		SourceTag string `json:"source_tag"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Sheet struct {
		URL             string   `json:"url"`
		RequestTimeout  Duration `json:"request_timeout"`
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"sheet,omitempty"`

	Dispatch struct {
		Mode              string   `json:"mode"`
		WebhookURL        string   `json:"webhook_url"`
		WebhookSigningKey string   `json:"webhook_signing_key"`
		RequestTimeout    Duration `json:"request_timeout"`
		WhatsAppBaseURL   string   `json:"whatsapp_base_url"`
		WhatsAppNumber    string   `json:"whatsapp_number"`
	} `json:"dispatch,omitempty"`

	Preview struct {
		LogFile string `json:"log_file"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Channel string `json:"channel"`
	} `json:"preview,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:   jsonCfg.App.Version,
			SourceTag: jsonCfg.App.SourceTag,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Sheet: Sheet{
			URL:             jsonCfg.Sheet.URL,
			RequestTimeout:  time.Duration(jsonCfg.Sheet.RequestTimeout),
			RefreshInterval: time.Duration(jsonCfg.Sheet.RefreshInterval),
		},
		Dispatch: Dispatch{
			Mode:              jsonCfg.Dispatch.Mode,
			WebhookURL:        jsonCfg.Dispatch.WebhookURL,
			WebhookSigningKey: jsonCfg.Dispatch.WebhookSigningKey,
			RequestTimeout:    time.Duration(jsonCfg.Dispatch.RequestTimeout),
			WhatsAppBaseURL:   jsonCfg.Dispatch.WhatsAppBaseURL,
			WhatsAppNumber:    jsonCfg.Dispatch.WhatsAppNumber,
		},
		Preview: Preview{
			LogFile: jsonCfg.Preview.LogFile,
			Name:    jsonCfg.Preview.Name,
			Email:   jsonCfg.Preview.Email,
			Phone:   jsonCfg.Preview.Phone,
			Channel: jsonCfg.Preview.Channel,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
