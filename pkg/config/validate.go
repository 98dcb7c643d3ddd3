package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "server.listen_address").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. All errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateCORS(&cfg.CORS)...)
	errs = append(errs, validateProviders(&cfg.Providers)...)
	errs = append(errs, validateHistory(&cfg.History)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateServer validates HTTP server configuration.
func validateServer(cfg *ServerConfig) []FieldError {
	var errs []FieldError

	if cfg.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: "listen address is required",
		})
	} else {
		_, portStr, err := net.SplitHostPort(cfg.ListenAddress)
		if err != nil {
			errs = append(errs, FieldError{
				Field:   "server.listen_address",
				Message: fmt.Sprintf("must be host:port: %v", err),
			})
		} else if port, err := strconv.Atoi(portStr); err != nil || port < 1 || port > 65535 {
			errs = append(errs, FieldError{
				Field:   "server.listen_address",
				Message: fmt.Sprintf("port %q must be an integer between 1 and 65535", portStr),
			})
		}
	}

	if cfg.ReadTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.read_timeout",
			Message: "read timeout must be positive",
		})
	}
	if cfg.WriteTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.write_timeout",
			Message: "write timeout must be positive",
		})
	}
	if cfg.RequestTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.request_timeout",
			Message: "request timeout must be positive",
		})
	}
	if cfg.ShutdownTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.shutdown_timeout",
			Message: "shutdown timeout must be positive",
		})
	}
	if cfg.MaxUploadBytes < 0 {
		errs = append(errs, FieldError{
			Field:   "server.max_upload_bytes",
			Message: "max upload bytes must be non-negative",
		})
	}

	return errs
}

// validateCORS validates CORS configuration.
func validateCORS(cfg *CORSConfig) []FieldError {
	var errs []FieldError

	for i, origin := range cfg.AllowedOrigins {
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("cors.allowed_origins[%d]", i),
				Message: fmt.Sprintf("origin %q must be scheme://host", origin),
			})
		}
	}
	if cfg.MaxAge < 0 {
		errs = append(errs, FieldError{
			Field:   "cors.max_age",
			Message: "max age must be non-negative",
		})
	}

	return errs
}

// validateProviders validates outbound provider client configuration.
// A missing API key is allowed: the service starts degraded and the
// affected endpoints answer 503. Everything else must be coherent.
func validateProviders(cfg *ProvidersConfig) []FieldError {
	var errs []FieldError

	if err := validateBaseURL(cfg.OpenAI.BaseURL); err != nil {
		errs = append(errs, FieldError{Field: "providers.openai.base_url", Message: err.Error()})
	}
	if cfg.OpenAI.Temperature < 0 || cfg.OpenAI.Temperature > 2 {
		errs = append(errs, FieldError{
			Field:   "providers.openai.temperature",
			Message: "temperature must be between 0 and 2",
		})
	}
	if cfg.OpenAI.MaxTokens < 0 {
		errs = append(errs, FieldError{
			Field:   "providers.openai.max_tokens",
			Message: "max tokens must be non-negative",
		})
	}
	if cfg.OpenAI.MaxRetries < 0 {
		errs = append(errs, FieldError{
			Field:   "providers.openai.max_retries",
			Message: "max retries must be non-negative",
		})
	}

	if err := validateBaseURL(cfg.ElevenLabs.BaseURL); err != nil {
		errs = append(errs, FieldError{Field: "providers.elevenlabs.base_url", Message: err.Error()})
	}
	if cfg.ElevenLabs.VoiceID == "" {
		errs = append(errs, FieldError{
			Field:   "providers.elevenlabs.voice_id",
			Message: "voice id is required",
		})
	}
	vs := cfg.ElevenLabs.VoiceSettings
	if vs.Stability < 0 || vs.Stability > 1 {
		errs = append(errs, FieldError{
			Field:   "providers.elevenlabs.voice_settings.stability",
			Message: "stability must be between 0 and 1",
		})
	}
	if vs.SimilarityBoost < 0 || vs.SimilarityBoost > 1 {
		errs = append(errs, FieldError{
			Field:   "providers.elevenlabs.voice_settings.similarity_boost",
			Message: "similarity boost must be between 0 and 1",
		})
	}
	if vs.Style < 0 || vs.Style > 1 {
		errs = append(errs, FieldError{
			Field:   "providers.elevenlabs.voice_settings.style",
			Message: "style must be between 0 and 1",
		})
	}
	if cfg.ElevenLabs.MaxRetries < 0 {
		errs = append(errs, FieldError{
			Field:   "providers.elevenlabs.max_retries",
			Message: "max retries must be non-negative",
		})
	}

	return errs
}

// validateHistory validates message history storage configuration.
func validateHistory(cfg *HistoryConfig) []FieldError {
	var errs []FieldError

	switch cfg.Backend {
	case "sqlite", "memory":
	default:
		errs = append(errs, FieldError{
			Field:   "history.backend",
			Message: fmt.Sprintf("backend %q must be sqlite or memory", cfg.Backend),
		})
	}

	if cfg.Backend == "sqlite" && cfg.SQLite.Path == "" {
		errs = append(errs, FieldError{
			Field:   "history.sqlite.path",
			Message: "sqlite path is required for the sqlite backend",
		})
	}
	if cfg.SQLite.MaxOpenConns < 0 {
		errs = append(errs, FieldError{
			Field:   "history.sqlite.max_open_conns",
			Message: "max open connections must be non-negative",
		})
	}
	if cfg.Retention.Days < 0 {
		errs = append(errs, FieldError{
			Field:   "history.retention.days",
			Message: "retention days must be non-negative",
		})
	}
	if cfg.Retention.PruneSchedule != "" {
		if _, err := cron.ParseStandard(cfg.Retention.PruneSchedule); err != nil {
			errs = append(errs, FieldError{
				Field:   "history.retention.prune_schedule",
				Message: fmt.Sprintf("invalid cron expression: %v", err),
			})
		}
	}

	return errs
}

// validateTelemetry validates logging and metrics configuration.
func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("level %q must be one of: debug, info, warn, error", cfg.Logging.Level),
		})
	}

	switch cfg.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("format %q must be json or text", cfg.Logging.Format),
		})
	}

	if !cfg.Metrics.Disabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		errs = append(errs, FieldError{
			Field:   "telemetry.metrics.path",
			Message: "metrics path must start with /",
		})
	}

	return errs
}

// validateBaseURL checks that a provider base URL is an absolute http(s) URL.
func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL must include a host")
	}
	return nil
}
