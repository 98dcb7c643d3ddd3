// Package history stores chat transcripts.
//
// Every exchange the assistant completes is recorded as a pair of messages
// (user, assistant) keyed by session. The Storage interface has two
// implementations: SQLite for deployments with a disk, and an in-memory
// store for tests and ephemeral containers. A cron-driven pruner enforces
// the retention window.
package history
