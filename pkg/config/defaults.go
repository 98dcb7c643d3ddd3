package config

import "time"

// Default values for configuration fields.
const (
	// Server defaults. The listen address follows the container launch
	// contract: all interfaces, port 8000.
	DefaultListenAddress   = "0.0.0.0:8000"
	DefaultPort            = 8000
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 120 * time.Second
	DefaultRequestTimeout  = 90 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1048576  // 1MB
	DefaultMaxUploadBytes  = 16 << 20 // 16MB of audio

	// CORS defaults
	DefaultCORSMaxAge = 3600 // 1 hour

	// OpenAI defaults
	DefaultOpenAIBaseURL     = "https://api.openai.com/v1"
	DefaultOpenAIModel       = "gpt-4o"
	DefaultOpenAITemperature = 0.7
	DefaultOpenAIMaxTokens   = 1000
	DefaultOpenAITimeout     = 60 * time.Second
	DefaultOpenAIMaxRetries  = 3

	// ElevenLabs defaults. The voice IDs come from the production
	// frontend configuration: Rachel for plain TTS, Dr. Prados for the
	// conversational agent.
	DefaultElevenLabsBaseURL = "https://api.elevenlabs.io/v1"
	DefaultVoiceID           = "21m00Tcm4TlvDq8ikWAM"
	DefaultAgentVoiceID      = "5kMbtRSEKIkRZSdXxrZg"
	DefaultAgentName         = "Doctor Prados de Paraiso"
	DefaultTTSModel          = "eleven_multilingual_v2"
	DefaultSTTModel          = "scribe_v1"
	DefaultVoiceStability    = 0.5
	DefaultVoiceSimilarity   = 0.75
	DefaultVoiceStyle        = 0.0
	DefaultVoiceSpeakerBoost = true
	DefaultElevenLabsTimeout = 60 * time.Second
	DefaultElevenLabsRetries = 2

	// History defaults
	DefaultHistoryBackend     = "sqlite"
	DefaultHistorySQLitePath  = "data/history.db"
	DefaultSQLiteMaxOpenConns = 10
	DefaultSQLiteMaxIdleConns = 5
	DefaultSQLiteWALMode      = true
	DefaultSQLiteBusyTimeout  = 5 * time.Second
	DefaultRetentionDays      = 90
	DefaultRetentionSchedule  = "0 3 * * *"

	// Telemetry defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "json"
	DefaultMetricsPath      = "/metrics"
	DefaultMetricsNamespace = "legalhub"
)

// BuiltinAllowedOrigins are the frontend origins that are always allowed.
// Origins from the CORS_ORIGINS environment variable are appended after
// these; the built-in list always takes priority.
var BuiltinAllowedOrigins = []string{
	"https://legbotdev.pradosdeparaiso.com.pe",
	"https://www.legbotdev.pradosdeparaiso.com.pe",
	"http://localhost:3000",
	"http://localhost:3001",
}

// defaultAllowedMethods are the methods the frontend uses.
var defaultAllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"}

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values and is safe to
// call multiple times.
func ApplyDefaults(cfg *Config) {
	// Server defaults
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.MaxHeaderBytes == 0 {
		cfg.Server.MaxHeaderBytes = DefaultMaxHeaderBytes
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = DefaultMaxUploadBytes
	}

	// CORS defaults. The built-in origins are always present even when
	// the file configures its own list.
	cfg.CORS.AllowedOrigins = MergeOrigins(BuiltinAllowedOrigins, cfg.CORS.AllowedOrigins)
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = append([]string(nil), defaultAllowedMethods...)
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"*"}
	}
	if len(cfg.CORS.ExposedHeaders) == 0 {
		cfg.CORS.ExposedHeaders = []string{"*"}
	}
	if cfg.CORS.MaxAge == 0 {
		cfg.CORS.MaxAge = DefaultCORSMaxAge
	}

	// OpenAI defaults
	if cfg.Providers.OpenAI.BaseURL == "" {
		cfg.Providers.OpenAI.BaseURL = DefaultOpenAIBaseURL
	}
	if cfg.Providers.OpenAI.Model == "" {
		cfg.Providers.OpenAI.Model = DefaultOpenAIModel
	}
	if cfg.Providers.OpenAI.Temperature == 0 {
		cfg.Providers.OpenAI.Temperature = DefaultOpenAITemperature
	}
	if cfg.Providers.OpenAI.MaxTokens == 0 {
		cfg.Providers.OpenAI.MaxTokens = DefaultOpenAIMaxTokens
	}
	if cfg.Providers.OpenAI.Timeout == 0 {
		cfg.Providers.OpenAI.Timeout = DefaultOpenAITimeout
	}
	if cfg.Providers.OpenAI.MaxRetries == 0 {
		cfg.Providers.OpenAI.MaxRetries = DefaultOpenAIMaxRetries
	}

	// ElevenLabs defaults
	if cfg.Providers.ElevenLabs.BaseURL == "" {
		cfg.Providers.ElevenLabs.BaseURL = DefaultElevenLabsBaseURL
	}
	if cfg.Providers.ElevenLabs.VoiceID == "" {
		cfg.Providers.ElevenLabs.VoiceID = DefaultVoiceID
	}
	if cfg.Providers.ElevenLabs.AgentVoiceID == "" {
		cfg.Providers.ElevenLabs.AgentVoiceID = DefaultAgentVoiceID
	}
	if cfg.Providers.ElevenLabs.AgentName == "" {
		cfg.Providers.ElevenLabs.AgentName = DefaultAgentName
	}
	if cfg.Providers.ElevenLabs.TTSModel == "" {
		cfg.Providers.ElevenLabs.TTSModel = DefaultTTSModel
	}
	if cfg.Providers.ElevenLabs.STTModel == "" {
		cfg.Providers.ElevenLabs.STTModel = DefaultSTTModel
	}
	if cfg.Providers.ElevenLabs.VoiceSettings == (VoiceSettingsConfig{}) {
		cfg.Providers.ElevenLabs.VoiceSettings = VoiceSettingsConfig{
			Stability:       DefaultVoiceStability,
			SimilarityBoost: DefaultVoiceSimilarity,
			Style:           DefaultVoiceStyle,
			SpeakerBoost:    DefaultVoiceSpeakerBoost,
		}
	}
	if cfg.Providers.ElevenLabs.Timeout == 0 {
		cfg.Providers.ElevenLabs.Timeout = DefaultElevenLabsTimeout
	}
	if cfg.Providers.ElevenLabs.MaxRetries == 0 {
		cfg.Providers.ElevenLabs.MaxRetries = DefaultElevenLabsRetries
	}

	// History defaults. The backend default never touches the disabled
	// flag, so an explicit history.disabled survives.
	if cfg.History.Backend == "" {
		cfg.History.Backend = DefaultHistoryBackend
	}
	if cfg.History.SQLite.Path == "" {
		cfg.History.SQLite.Path = DefaultHistorySQLitePath
	}
	if cfg.History.SQLite.MaxOpenConns == 0 {
		cfg.History.SQLite.MaxOpenConns = DefaultSQLiteMaxOpenConns
	}
	if cfg.History.SQLite.MaxIdleConns == 0 {
		cfg.History.SQLite.MaxIdleConns = DefaultSQLiteMaxIdleConns
	}
	if cfg.History.SQLite.BusyTimeout == 0 {
		cfg.History.SQLite.BusyTimeout = DefaultSQLiteBusyTimeout
	}
	if cfg.History.Retention.Days == 0 {
		cfg.History.Retention.Days = DefaultRetentionDays
	}
	if cfg.History.Retention.PruneSchedule == "" {
		cfg.History.Retention.PruneSchedule = DefaultRetentionSchedule
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
}

// MergeOrigins merges two origin lists, preserving the order of the first
// list and appending unseen entries from the second. Empty entries and the
// wildcard are skipped; the built-in allow-list is never widened to "*".
func MergeOrigins(builtin, extra []string) []string {
	seen := make(map[string]bool, len(builtin)+len(extra))
	merged := make([]string, 0, len(builtin)+len(extra))

	for _, lists := range [][]string{builtin, extra} {
		for _, origin := range lists {
			if origin == "" || origin == "*" {
				continue
			}
			if seen[origin] {
				continue
			}
			seen[origin] = true
			merged = append(merged, origin)
		}
	}

	return merged
}
