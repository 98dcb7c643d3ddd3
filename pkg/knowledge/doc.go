// Package knowledge manages the legal knowledge base injected into every
// system prompt.
//
// The knowledge text ships embedded in the binary; a file on disk can
// override it, and an fsnotify watcher hot-reloads the file on change so
// legal copy updates do not require a redeploy. Reads return an immutable
// snapshot and are safe for concurrent use.
package knowledge
