package history

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// Schema contains the SQL statements to create the history database schema.
const Schema = `
-- Transcript messages
CREATE TABLE IF NOT EXISTS messages (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    role TEXT NOT NULL,
    content TEXT NOT NULL,
    audio_format TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_messages_created ON messages(created_at);

-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);
`

// SQL statements used by the SQLite backend.
const (
	// InsertSchemaVersion records the schema version (idempotent).
	InsertSchemaVersion = `INSERT OR IGNORE INTO schema_version (version) VALUES (?)`

	// GetSchemaVersion reads the highest recorded schema version.
	GetSchemaVersion = `SELECT MAX(version) FROM schema_version`

	// InsertMessage stores one message.
	InsertMessage = `
		INSERT INTO messages (id, session_id, role, content, audio_format, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	// ListMessages lists recent messages newest first.
	ListMessages = `
		SELECT id, session_id, role, content, audio_format, created_at
		FROM messages
		ORDER BY created_at DESC, id
		LIMIT ?`

	// ListSessionMessages lists one session's messages newest first.
	ListSessionMessages = `
		SELECT id, session_id, role, content, audio_format, created_at
		FROM messages
		WHERE session_id = ?
		ORDER BY created_at DESC, id
		LIMIT ?`

	// CountMessages counts all stored messages.
	CountMessages = `SELECT COUNT(*) FROM messages`

	// DeleteMessagesBefore removes messages older than a cutoff.
	DeleteMessagesBefore = `DELETE FROM messages WHERE created_at < ?`
)
