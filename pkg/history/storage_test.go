package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

// storageFactories lets every Storage test run against both backends.
func storageFactories(t *testing.T) map[string]func(t *testing.T) Storage {
	return map[string]func(t *testing.T) Storage{
		"memory": func(t *testing.T) Storage {
			return NewMemoryStorage()
		},
		"sqlite": func(t *testing.T) Storage {
			cfg := DefaultSQLiteConfig()
			cfg.Path = filepath.Join(t.TempDir(), "history.db")
			s, err := NewSQLiteStorage(cfg)
			if err != nil {
				t.Fatalf("NewSQLiteStorage() error = %v", err)
			}
			return s
		},
	}
}

func TestStoreAssignsIDAndTimestamp(t *testing.T) {
	for name, factory := range storageFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			defer s.Close()

			msg := &Message{SessionID: "s1", Role: RoleUser, Content: "hola"}
			if err := s.Store(context.Background(), msg); err != nil {
				t.Fatalf("Store() error = %v", err)
			}
			if msg.ID == "" {
				t.Error("Store() did not assign an ID")
			}
			if msg.CreatedAt.IsZero() {
				t.Error("Store() did not assign CreatedAt")
			}
		})
	}
}

func TestStoreRejectsInvalidMessages(t *testing.T) {
	tests := []struct {
		name string
		msg  *Message
	}{
		{name: "missing session", msg: &Message{Role: RoleUser, Content: "hola"}},
		{name: "bad role", msg: &Message{SessionID: "s1", Role: "system", Content: "hola"}},
		{name: "empty content", msg: &Message{SessionID: "s1", Role: RoleUser}},
	}

	for name, factory := range storageFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			defer s.Close()

			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					if err := s.Store(context.Background(), tt.msg); err == nil {
						t.Error("Store() expected error, got nil")
					}
				})
			}
		})
	}
}

func TestListNewestFirstPerSession(t *testing.T) {
	for name, factory := range storageFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			defer s.Close()
			ctx := context.Background()

			base := time.Now().UTC().Add(-time.Hour)
			seed := []*Message{
				{SessionID: "s1", Role: RoleUser, Content: "pregunta 1", CreatedAt: base},
				{SessionID: "s1", Role: RoleAssistant, Content: "respuesta 1", AudioFormat: "mp3", CreatedAt: base.Add(time.Minute)},
				{SessionID: "s2", Role: RoleUser, Content: "otra sesión", CreatedAt: base.Add(2 * time.Minute)},
				{SessionID: "s1", Role: RoleUser, Content: "pregunta 2", CreatedAt: base.Add(3 * time.Minute)},
			}
			for _, msg := range seed {
				if err := s.Store(ctx, msg); err != nil {
					t.Fatalf("Store() error = %v", err)
				}
			}

			got, err := s.List(ctx, ListFilter{SessionID: "s1"})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(got) != 3 {
				t.Fatalf("len(List()) = %d, want 3", len(got))
			}
			wantOrder := []string{"pregunta 2", "respuesta 1", "pregunta 1"}
			for i, want := range wantOrder {
				if got[i].Content != want {
					t.Errorf("List()[%d].Content = %q, want %q", i, got[i].Content, want)
				}
			}
			if got[1].AudioFormat != "mp3" {
				t.Errorf("AudioFormat = %q, want mp3", got[1].AudioFormat)
			}
		})
	}
}

func TestListLimit(t *testing.T) {
	for name, factory := range storageFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			defer s.Close()
			ctx := context.Background()

			base := time.Now().UTC().Add(-time.Hour)
			for i := 0; i < 5; i++ {
				msg := &Message{
					SessionID: "s1",
					Role:      RoleUser,
					Content:   "m",
					CreatedAt: base.Add(time.Duration(i) * time.Second),
				}
				if err := s.Store(ctx, msg); err != nil {
					t.Fatalf("Store() error = %v", err)
				}
			}

			got, err := s.List(ctx, ListFilter{Limit: 2})
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(got) != 2 {
				t.Errorf("len(List()) = %d, want 2", len(got))
			}
		})
	}
}

func TestDeleteOlderThan(t *testing.T) {
	for name, factory := range storageFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			defer s.Close()
			ctx := context.Background()

			now := time.Now().UTC()
			old := &Message{SessionID: "s1", Role: RoleUser, Content: "viejo", CreatedAt: now.AddDate(0, 0, -100)}
			recent := &Message{SessionID: "s1", Role: RoleUser, Content: "reciente", CreatedAt: now}
			for _, msg := range []*Message{old, recent} {
				if err := s.Store(ctx, msg); err != nil {
					t.Fatalf("Store() error = %v", err)
				}
			}

			deleted, err := s.DeleteOlderThan(ctx, now.AddDate(0, 0, -90))
			if err != nil {
				t.Fatalf("DeleteOlderThan() error = %v", err)
			}
			if deleted != 1 {
				t.Errorf("deleted = %d, want 1", deleted)
			}

			count, err := s.Count(ctx)
			if err != nil {
				t.Fatalf("Count() error = %v", err)
			}
			if count != 1 {
				t.Errorf("Count() = %d, want 1", count)
			}
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	cfg := DefaultSQLiteConfig()
	cfg.Path = path

	s, err := NewSQLiteStorage(cfg)
	if err != nil {
		t.Fatalf("NewSQLiteStorage() error = %v", err)
	}
	msg := &Message{SessionID: "s1", Role: RoleUser, Content: "persistente"}
	if err := s.Store(context.Background(), msg); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := NewSQLiteStorage(cfg)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	got, err := reopened.List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0].Content != "persistente" {
		t.Errorf("List() = %v, want the stored message", got)
	}
}
