package config

import "time"

const (
	defaultPort            = 8080
	defaultMonPort         = 8888
	defaultLogLevel        = "info"
	defaultServiceName     = "messenger-relay"
	defaultGraphAPIURL     = "https://graph.facebook.com"
	defaultGraphAPIVersion = "v19.0"
	defaultHTTPTimeout     = 30 * time.Second
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// VerifyToken is the secret echoed by the platform during the verification handshake.
	VerifyToken string `env:"VERIFY_TOKEN"`
	// PageAccessToken authorizes calls to the send API.
	PageAccessToken string `env:"PAGE_ACCESS_TOKEN"`
	// AppSecret enables X-Hub-Signature-256 checks on inbound events when set.
	AppSecret string `env:"APP_SECRET"`

	AIEndpointURL   string `env:"AI_ENDPOINT_URL"`
	GraphAPIURL     string `env:"GRAPH_API_URL"`
	GraphAPIVersion string `env:"GRAPH_API_VERSION"`

	// HistoryTTL of zero keeps conversation history for the process lifetime.
	HistoryTTL  time.Duration `env:"HISTORY_TTL"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT"`
}

// SetDefaults fills in every unset optional setting.
func (s *Settings) SetDefaults() {
	if s.Port == 0 {
		s.Port = defaultPort
	}
	if s.MonPort == 0 {
		s.MonPort = defaultMonPort
	}
	if s.LogLevel == "" {
		s.LogLevel = defaultLogLevel
	}
	if s.ServiceName == "" {
		s.ServiceName = defaultServiceName
	}
	if s.GraphAPIURL == "" {
		s.GraphAPIURL = defaultGraphAPIURL
	}
	if s.GraphAPIVersion == "" {
		s.GraphAPIVersion = defaultGraphAPIVersion
	}
	if s.HTTPTimeout <= 0 {
		s.HTTPTimeout = defaultHTTPTimeout
	}
}

// MissingRequired returns the env names of settings needed for full operation that are not set.
func (s *Settings) MissingRequired() []string {
	var missing []string
	if s.VerifyToken == "" {
		missing = append(missing, "VERIFY_TOKEN")
	}
	if s.PageAccessToken == "" {
		missing = append(missing, "PAGE_ACCESS_TOKEN")
	}
	if s.AIEndpointURL == "" {
		missing = append(missing, "AI_ENDPOINT_URL")
	}
	return missing
}
