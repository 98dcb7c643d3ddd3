package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStorage is an in-memory Storage implementation for tests and
// ephemeral deployments. Messages are lost on restart.
type MemoryStorage struct {
	mu       sync.RWMutex
	messages []*Message
}

// NewMemoryStorage creates an in-memory storage backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Store persists a message.
func (s *MemoryStorage) Store(_ context.Context, msg *Message) error {
	if err := msg.Validate(); err != nil {
		return NewStorageError("memory", "validate", err)
	}
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	stored := *msg
	s.mu.Lock()
	s.messages = append(s.messages, &stored)
	s.mu.Unlock()
	return nil
}

// List returns messages newest first.
func (s *MemoryStorage) List(_ context.Context, filter ListFilter) ([]*Message, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*Message
	// Stored in insertion order; walk backwards for newest first.
	for i := len(s.messages) - 1; i >= 0 && len(result) < limit; i-- {
		msg := s.messages[i]
		if filter.SessionID != "" && msg.SessionID != filter.SessionID {
			continue
		}
		copied := *msg
		result = append(result, &copied)
	}

	return result, nil
}

// Count returns the total number of stored messages.
func (s *MemoryStorage) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.messages)), nil
}

// DeleteOlderThan removes messages created before the cutoff.
func (s *MemoryStorage) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.messages[:0]
	var deleted int64
	for _, msg := range s.messages {
		if msg.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, msg)
	}
	s.messages = kept
	return deleted, nil
}

// Close is a no-op for the in-memory backend.
func (s *MemoryStorage) Close() error {
	return nil
}
