package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-version application version
//	-request-timeout inbound request timeout (e.g., "30s")
//	-sheet-url remote sheet CSV export URL
//	-sheet-timeout sheet download timeout
//	-sheet-refresh sheet refresh interval
//	-mode dispatch mode: webhook or whatsapp
//	-webhook-url registration webhook URL
//	-webhook-signing-key HMAC key for webhook payloads
//	-webhook-timeout webhook request timeout
//	-whatsapp-number destination number for whatsapp mode
//	-log-file preview log file
//	-name, -email, -phone, -channel preview registration form
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var version string
	var requestTimeout time.Duration
	var sheetURL string
	var sheetTimeout, sheetRefresh time.Duration
	var mode string
	var webhookURL, webhookSigningKey string
	var webhookTimeout time.Duration
	var whatsAppNumber string
	var preview Preview

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&version, "version", "", "Application version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&sheetURL, "sheet-url", "", "Remote sheet CSV export URL")
	fs.DurationVar(&sheetTimeout, "sheet-timeout", 0, "Sheet download timeout")
	fs.DurationVar(&sheetRefresh, "sheet-refresh", 0, "Sheet refresh interval")
	fs.StringVar(&mode, "mode", "", "Dispatch mode: webhook or whatsapp")
	fs.StringVar(&webhookURL, "webhook-url", "", "Registration webhook URL")
	fs.StringVar(&webhookSigningKey, "webhook-signing-key", "", "HMAC key for webhook payloads")
	fs.DurationVar(&webhookTimeout, "webhook-timeout", 0, "Webhook request timeout")
	fs.StringVar(&whatsAppNumber, "whatsapp-number", "", "Destination number for whatsapp mode")

	fs.StringVar(&preview.LogFile, "log-file", "", "Preview log file")
	fs.StringVar(&preview.Name, "name", "", "Preview form: name")
	fs.StringVar(&preview.Email, "email", "", "Preview form: email")
	fs.StringVar(&preview.Phone, "phone", "", "Preview form: phone")
	fs.StringVar(&preview.Channel, "channel", "", "Preview form: contact channel")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Sheet: Sheet{
			URL:             sheetURL,
			RequestTimeout:  sheetTimeout,
			RefreshInterval: sheetRefresh,
		},
		Dispatch: Dispatch{
			Mode:              mode,
			WebhookURL:        webhookURL,
			WebhookSigningKey: webhookSigningKey,
			RequestTimeout:    webhookTimeout,
			WhatsAppNumber:    whatsAppNumber,
		},
		Preview:      preview,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
