package config

import (
	"strings"
	"testing"
)

// validConfig returns a fully defaulted configuration for mutation in tests.
func validConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func TestValidateDefaults(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Fatalf("Validate() on defaults returned error: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "empty listen address",
			mutate:    func(c *Config) { c.Server.ListenAddress = "" },
			wantField: "server.listen_address",
		},
		{
			name:      "listen address without port",
			mutate:    func(c *Config) { c.Server.ListenAddress = "0.0.0.0" },
			wantField: "server.listen_address",
		},
		{
			name:      "listen address port out of range",
			mutate:    func(c *Config) { c.Server.ListenAddress = "0.0.0.0:99999" },
			wantField: "server.listen_address",
		},
		{
			name:      "negative write timeout",
			mutate:    func(c *Config) { c.Server.WriteTimeout = -1 },
			wantField: "server.write_timeout",
		},
		{
			name:      "origin without scheme",
			mutate:    func(c *Config) { c.CORS.AllowedOrigins = []string{"example.com"} },
			wantField: "cors.allowed_origins[0]",
		},
		{
			name:      "bad openai base url scheme",
			mutate:    func(c *Config) { c.Providers.OpenAI.BaseURL = "ftp://api.openai.com" },
			wantField: "providers.openai.base_url",
		},
		{
			name:      "temperature out of range",
			mutate:    func(c *Config) { c.Providers.OpenAI.Temperature = 3.5 },
			wantField: "providers.openai.temperature",
		},
		{
			name:      "empty voice id",
			mutate:    func(c *Config) { c.Providers.ElevenLabs.VoiceID = "" },
			wantField: "providers.elevenlabs.voice_id",
		},
		{
			name: "stability out of range",
			mutate: func(c *Config) {
				c.Providers.ElevenLabs.VoiceSettings.Stability = 1.5
			},
			wantField: "providers.elevenlabs.voice_settings.stability",
		},
		{
			name:      "unknown history backend",
			mutate:    func(c *Config) { c.History.Backend = "mongo" },
			wantField: "history.backend",
		},
		{
			name: "sqlite backend without path",
			mutate: func(c *Config) {
				c.History.Backend = "sqlite"
				c.History.SQLite.Path = ""
			},
			wantField: "history.sqlite.path",
		},
		{
			name:      "bad cron expression",
			mutate:    func(c *Config) { c.History.Retention.PruneSchedule = "every day at 3" },
			wantField: "history.retention.prune_schedule",
		},
		{
			name:      "unknown log level",
			mutate:    func(c *Config) { c.Telemetry.Logging.Level = "verbose" },
			wantField: "telemetry.logging.level",
		},
		{
			name:      "metrics path without slash",
			mutate:    func(c *Config) { c.Telemetry.Metrics.Path = "metrics" },
			wantField: "telemetry.metrics.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("error %q does not mention field %q", err.Error(), tt.wantField)
			}
		})
	}
}

func TestValidationErrorCollectsAll(t *testing.T) {
	cfg := validConfig()
	cfg.Server.ListenAddress = ""
	cfg.History.Backend = "redis"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() expected error, got nil")
	}

	var verr ValidationError
	if !asValidationError(err, &verr) {
		t.Fatalf("error type = %T, want ValidationError", err)
	}
	if len(verr.Errors) != 2 {
		t.Errorf("len(Errors) = %d, want 2", len(verr.Errors))
	}
}

func asValidationError(err error, target *ValidationError) bool {
	v, ok := err.(ValidationError)
	if ok {
		*target = v
	}
	return ok
}
