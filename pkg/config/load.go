package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// A missing file is not an error: the service is expected to run inside a
// container configured purely through environment variables, so an absent
// file yields the default configuration. Defaults are applied and the
// result validated.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults only.
	default:
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Overrides use the LEGALHUB_SECTION_FIELD
// naming convention, plus the bare deployment variables PORT, OPENAI_API_KEY,
// ELEVENLABS_API_KEY and CORS_ORIGINS that the container contract defines.
// Environment variables always take precedence over file values.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. It returns an error only for values that cannot be
// interpreted at all (a malformed PORT aborts startup rather than silently
// binding the wrong port).
func applyEnvOverrides(cfg *Config) error {
	// Server overrides
	if val := os.Getenv("LEGALHUB_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if val := os.Getenv("LEGALHUB_SERVER_READ_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if val := os.Getenv("LEGALHUB_SERVER_WRITE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}
	if val := os.Getenv("LEGALHUB_SERVER_SHUTDOWN_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ShutdownTimeout = d
		}
	}

	// PORT: the container launch contract. The value replaces the port of
	// the listen address; the host part is preserved.
	if val := os.Getenv("PORT"); val != "" {
		port, err := strconv.Atoi(val)
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("invalid PORT value %q: must be an integer between 1 and 65535", val)
		}
		host, _, err := net.SplitHostPort(cfg.Server.ListenAddress)
		if err != nil {
			host = "0.0.0.0"
		}
		cfg.Server.ListenAddress = net.JoinHostPort(host, strconv.Itoa(port))
	}

	// CORS_ORIGINS: comma-separated extra origins, appended after the
	// built-in allow-list. "*" is ignored, matching the original frontend
	// deployment behavior.
	if val := os.Getenv("CORS_ORIGINS"); val != "" && val != "*" {
		extra := make([]string, 0)
		for _, origin := range strings.Split(val, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				extra = append(extra, origin)
			}
		}
		cfg.CORS.AllowedOrigins = MergeOrigins(cfg.CORS.AllowedOrigins, extra)
	}
	if val := os.Getenv("LEGALHUB_CORS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.CORS.Disabled = !b
		}
	}

	// Provider overrides. The bare key variables are the ones the
	// deployment platform sets.
	if val := os.Getenv("OPENAI_API_KEY"); val != "" {
		cfg.Providers.OpenAI.APIKey = val
	}
	if val := os.Getenv("ELEVENLABS_API_KEY"); val != "" {
		cfg.Providers.ElevenLabs.APIKey = val
	}
	if val := os.Getenv("LEGALHUB_PROVIDERS_OPENAI_BASE_URL"); val != "" {
		cfg.Providers.OpenAI.BaseURL = val
	}
	if val := os.Getenv("LEGALHUB_PROVIDERS_OPENAI_MODEL"); val != "" {
		cfg.Providers.OpenAI.Model = val
	}
	if val := os.Getenv("LEGALHUB_PROVIDERS_ELEVENLABS_BASE_URL"); val != "" {
		cfg.Providers.ElevenLabs.BaseURL = val
	}
	if val := os.Getenv("LEGALHUB_PROVIDERS_ELEVENLABS_VOICE_ID"); val != "" {
		cfg.Providers.ElevenLabs.VoiceID = val
	}

	// Knowledge overrides
	if val := os.Getenv("LEGALHUB_KNOWLEDGE_PATH"); val != "" {
		cfg.Knowledge.Path = val
	}
	if val := os.Getenv("LEGALHUB_KNOWLEDGE_WATCH"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Knowledge.Watch = b
		}
	}

	// History overrides
	if val := os.Getenv("LEGALHUB_HISTORY_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.History.Disabled = !b
		}
	}
	if val := os.Getenv("LEGALHUB_HISTORY_BACKEND"); val != "" {
		cfg.History.Backend = val
	}
	if val := os.Getenv("LEGALHUB_HISTORY_SQLITE_PATH"); val != "" {
		cfg.History.SQLite.Path = val
	}
	if val := os.Getenv("LEGALHUB_HISTORY_RETENTION_DAYS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.History.Retention.Days = i
		}
	}

	// Telemetry overrides
	if val := os.Getenv("LEGALHUB_TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("LEGALHUB_TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("LEGALHUB_TELEMETRY_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Disabled = !b
		}
	}

	return nil
}
