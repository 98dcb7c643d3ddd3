package history

import (
	"context"
	"fmt"
	"time"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one stored transcript entry.
type Message struct {
	// ID is a UUID assigned when the message is stored.
	ID string `json:"id"`

	// SessionID groups messages of one conversation.
	SessionID string `json:"session_id"`

	// Role is who produced the message (user or assistant).
	Role string `json:"role"`

	// Content is the message text. For voice messages this is the
	// transcript, not the audio.
	Content string `json:"content"`

	// AudioFormat is set when the exchange produced audio (e.g. "mp3").
	AudioFormat string `json:"audio_format,omitempty"`

	// CreatedAt is when the message was stored.
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks a message before storage.
func (m *Message) Validate() error {
	if m.SessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if m.Role != RoleUser && m.Role != RoleAssistant {
		return fmt.Errorf("role %q must be user or assistant", m.Role)
	}
	if m.Content == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

// ListFilter narrows a List query.
type ListFilter struct {
	// SessionID restricts results to one session when non-empty.
	SessionID string

	// Limit bounds the number of results. Zero means the storage default.
	Limit int
}

// Storage is the transcript store. Implementations must be safe for
// concurrent use.
type Storage interface {
	// Store persists a message, assigning ID and CreatedAt if unset.
	Store(ctx context.Context, msg *Message) error

	// List returns messages newest first.
	List(ctx context.Context, filter ListFilter) ([]*Message, error)

	// Count returns the total number of stored messages.
	Count(ctx context.Context) (int64, error)

	// DeleteOlderThan removes messages created before the cutoff and
	// returns the number deleted.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// Close releases storage resources.
	Close() error
}

// StorageError wraps a storage backend failure with its operation.
type StorageError struct {
	// Backend is the storage backend name ("sqlite", "memory").
	Backend string

	// Op is the failing operation.
	Op string

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("history storage %q %s failed: %v", e.Backend, e.Op, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a StorageError.
func NewStorageError(backend, op string, cause error) *StorageError {
	return &StorageError{Backend: backend, Op: op, Cause: cause}
}
