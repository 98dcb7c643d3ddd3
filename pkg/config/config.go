package config

import "time"

// Config is the root configuration for the Legal Hub backend.
type Config struct {
	// Server contains HTTP server settings.
	Server ServerConfig `yaml:"server"`

	// CORS contains cross-origin settings for the browser frontend.
	CORS CORSConfig `yaml:"cors"`

	// Providers contains outbound API client settings.
	Providers ProvidersConfig `yaml:"providers"`

	// Knowledge contains legal knowledge base settings.
	Knowledge KnowledgeConfig `yaml:"knowledge"`

	// History contains message history storage settings.
	History HistoryConfig `yaml:"history"`

	// Telemetry contains logging and metrics settings.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// ListenAddress is the host:port the server binds to.
	// The PORT environment variable overrides the port part.
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading a request.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration for writing a response.
	// Voice endpoints synthesize audio, so this is generous by default.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// RequestTimeout bounds one request through the handler chain.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// IdleTimeout is the keep-alive idle timeout.
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits request header size.
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// MaxUploadBytes limits multipart audio uploads.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// CORSConfig contains cross-origin resource sharing settings.
//
// AllowedOrigins always includes the built-in frontend origins; origins
// supplied through the CORS_ORIGINS environment variable are appended and
// deduplicated, with the built-in list taking priority.
type CORSConfig struct {
	// Disabled turns the CORS middleware off entirely. CORS is on by
	// default because the frontend is always served cross-origin.
	Disabled bool `yaml:"disabled"`

	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
	ExposedHeaders []string `yaml:"exposed_headers"`
	MaxAge         int      `yaml:"max_age"`
}

// ProvidersConfig groups outbound API client settings.
type ProvidersConfig struct {
	// OpenAI configures the chat completion client.
	OpenAI OpenAIConfig `yaml:"openai"`

	// ElevenLabs configures the speech synthesis/transcription client.
	ElevenLabs ElevenLabsConfig `yaml:"elevenlabs"`
}

// OpenAIConfig configures the OpenAI-compatible chat completion client.
// An empty APIKey means the provider is not configured; chat endpoints
// then return 503 instead of failing at startup.
type OpenAIConfig struct {
	BaseURL     string        `yaml:"base_url"`
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxRetries  int           `yaml:"max_retries"`
}

// ElevenLabsConfig configures the ElevenLabs speech client.
// An empty APIKey means the provider is not configured; voice endpoints
// then return 503 and text chat responds without audio.
type ElevenLabsConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`

	// VoiceID is the default voice for text-to-speech.
	VoiceID string `yaml:"voice_id"`

	// AgentVoiceID is the voice used for agent replies when the agent
	// lookup fails or returns no voice.
	AgentVoiceID string `yaml:"agent_voice_id"`

	// AgentName is the persona name used in agent prompts when the
	// lookup does not provide one.
	AgentName string `yaml:"agent_name"`

	// TTSModel is the text-to-speech model identifier.
	TTSModel string `yaml:"tts_model"`

	// STTModel is the speech-to-text model identifier.
	STTModel string `yaml:"stt_model"`

	// VoiceSettings tunes synthesis output.
	VoiceSettings VoiceSettingsConfig `yaml:"voice_settings"`

	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// VoiceSettingsConfig tunes ElevenLabs synthesis.
type VoiceSettingsConfig struct {
	Stability       float64 `yaml:"stability"`
	SimilarityBoost float64 `yaml:"similarity_boost"`
	Style           float64 `yaml:"style"`
	SpeakerBoost    bool    `yaml:"speaker_boost"`
}

// KnowledgeConfig configures the legal knowledge base.
type KnowledgeConfig struct {
	// Path is an optional file overriding the embedded knowledge text.
	Path string `yaml:"path"`

	// Watch enables hot reload of Path on change.
	Watch bool `yaml:"watch"`
}

// HistoryConfig configures message history storage.
type HistoryConfig struct {
	// Disabled turns transcript recording off entirely. History is on by
	// default; a plain bool cannot distinguish an explicit false from an
	// absent key, so the flag is inverted like cors.disabled.
	Disabled bool `yaml:"disabled"`

	Backend string `yaml:"backend"` // "sqlite" or "memory"

	SQLite    SQLiteConfig    `yaml:"sqlite"`
	Retention RetentionConfig `yaml:"retention"`
}

// SQLiteConfig configures the SQLite history backend.
type SQLiteConfig struct {
	Path         string        `yaml:"path"`
	MaxOpenConns int           `yaml:"max_open_conns"`
	MaxIdleConns int           `yaml:"max_idle_conns"`
	WALMode      bool          `yaml:"wal_mode"`
	BusyTimeout  time.Duration `yaml:"busy_timeout"`
}

// RetentionConfig configures history pruning.
type RetentionConfig struct {
	// Days is the number of days to retain messages. 0 disables pruning.
	Days int `yaml:"days"`

	// PruneSchedule is a cron expression for scheduled pruning.
	PruneSchedule string `yaml:"prune_schedule"`
}

// TelemetryConfig groups logging and metrics settings.
type TelemetryConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// MetricsConfig configures the Prometheus metrics endpoint.
type MetricsConfig struct {
	// Disabled turns the metrics endpoint off. On by default.
	Disabled bool `yaml:"disabled"`

	Path      string `yaml:"path"`
	Namespace string `yaml:"namespace"`
}
