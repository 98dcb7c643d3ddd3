package providers

import "context"

// ChatProvider is the interface for chat completion backends.
//
// All methods accept a context.Context for cancellation and timeout control.
// Implementations must respect context cancellation and return immediately
// when the context is cancelled.
//
// Example usage:
//
//	resp, err := chat.Complete(ctx, &providers.ChatRequest{
//	    Messages: []providers.Message{
//	        {Role: providers.RoleSystem, Content: prompt},
//	        {Role: providers.RoleUser, Content: question},
//	    },
//	})
type ChatProvider interface {
	// Complete sends a chat completion request and returns the normalized
	// response. Transient errors are retried with exponential backoff.
	Complete(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// IsConfigured reports whether the adapter has credentials.
	// Unconfigured adapters fail fast with a NotConfiguredError.
	IsConfigured() bool

	// GetName returns the provider's configured name.
	GetName() string

	// IsHealthy returns the current health status.
	IsHealthy() bool

	// Close releases pooled connections.
	Close() error
}

// SpeechProvider is the interface for speech synthesis and transcription
// backends.
type SpeechProvider interface {
	// Synthesize converts text to audio.
	Synthesize(ctx context.Context, req *SpeechRequest) (*Audio, error)

	// Transcribe converts audio to text.
	Transcribe(ctx context.Context, audio []byte, filename string) (*Transcript, error)

	// LookupAgent fetches a conversational agent's voice and name.
	// Callers treat failures as non-fatal and fall back to defaults.
	LookupAgent(ctx context.Context, agentID string) (*AgentInfo, error)

	// IsConfigured reports whether the adapter has credentials.
	IsConfigured() bool

	// GetName returns the provider's configured name.
	GetName() string

	// IsHealthy returns the current health status.
	IsHealthy() bool

	// Close releases pooled connections.
	Close() error
}
