package providers

import "time"

// Message represents a single message in a conversation.
// It is provider-agnostic and transformed to wire formats by adapters.
type Message struct {
	// Role identifies the message sender (system, user, assistant).
	Role string `json:"role"`

	// Content is the message text.
	Content string `json:"content"`
}

// TokenUsage tracks token consumption for a chat request.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatRequest is a provider-agnostic chat completion request.
type ChatRequest struct {
	// Model is the model identifier. Empty uses the adapter's configured model.
	Model string `json:"model"`

	// Messages is the conversation, system prompt first.
	Messages []Message `json:"messages"`

	// Temperature controls randomness (0.0 to 2.0).
	Temperature float64 `json:"temperature,omitempty"`

	// MaxTokens bounds the generated reply length.
	MaxTokens int `json:"max_tokens,omitempty"`
}

// ChatResponse is a normalized chat completion response.
type ChatResponse struct {
	// ID is the provider's response identifier.
	ID string `json:"id"`

	// Model is the model that generated the response.
	Model string `json:"model"`

	// Content is the generated reply text.
	Content string `json:"content"`

	// FinishReason indicates why generation stopped
	// (stop, length, content_filter).
	FinishReason string `json:"finish_reason"`

	// Usage contains token consumption information.
	Usage TokenUsage `json:"usage"`

	// Created is the Unix timestamp when the response was created.
	Created int64 `json:"created"`
}

// SpeechRequest is a text-to-speech request.
type SpeechRequest struct {
	// Text is the text to synthesize.
	Text string

	// VoiceID selects the voice. Empty uses the adapter's configured voice.
	VoiceID string
}

// Audio is synthesized speech.
type Audio struct {
	// Data is the raw encoded audio.
	Data []byte

	// Format is the container format, currently always "mp3".
	Format string
}

// Transcript is the result of speech-to-text.
type Transcript struct {
	// Text is the recognized text, whitespace-trimmed.
	Text string

	// Language is the detected language code, if the provider reports one.
	Language string
}

// AgentInfo describes a conversational agent fetched from the provider.
type AgentInfo struct {
	// ID is the agent identifier.
	ID string

	// Name is the agent's display name.
	Name string

	// VoiceID is the voice the agent speaks with.
	VoiceID string
}

// ProviderHealth tracks the health status of a provider.
type ProviderHealth struct {
	// IsHealthy indicates whether the provider is currently healthy.
	IsHealthy bool

	// LastCheck is the timestamp of the last health update.
	LastCheck time.Time

	// LastError is the most recent error encountered (nil if healthy).
	LastError error

	// ConsecutiveFailures counts sequential request failures.
	ConsecutiveFailures int

	// LastSuccessfulRequest is the timestamp of the last successful request.
	LastSuccessfulRequest time.Time

	// TotalRequests is the total number of requests sent to this provider.
	TotalRequests int64

	// FailedRequests is the total number of failed requests.
	FailedRequests int64
}

// CallRecorder receives provider call observations. The metrics collector
// satisfies it; adapters record through it when one is configured.
type CallRecorder interface {
	// RecordProviderCall records one outbound call with its outcome.
	RecordProviderCall(provider, operation, status string, duration time.Duration)

	// RecordChatTokens records token consumption for a chat completion.
	RecordChatTokens(model string, promptTokens, completionTokens int)
}

// ProviderConfig contains the subset of configuration an adapter needs.
type ProviderConfig struct {
	// Name is the provider identifier (e.g., "openai", "elevenlabs").
	Name string

	// BaseURL is the API endpoint base URL.
	BaseURL string

	// APIKey is the authentication key. Empty means not configured.
	APIKey string

	// Timeout is the request timeout duration.
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts.
	MaxRetries int

	// MaxIdleConns is the maximum number of idle connections in the pool.
	MaxIdleConns int

	// MaxIdleConnsPerHost is the maximum idle connections per host.
	MaxIdleConnsPerHost int

	// IdleConnTimeout is how long an idle connection remains in the pool.
	IdleConnTimeout time.Duration

	// Recorder receives call and token metrics. Nil disables recording.
	Recorder CallRecorder
}

// Message role constants
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Finish reason constants
const (
	FinishReasonStop          = "stop"
	FinishReasonLength        = "length"
	FinishReasonContentFilter = "content_filter"
)

// FormatMP3 is the audio container format produced by speech synthesis.
const FormatMP3 = "mp3"
