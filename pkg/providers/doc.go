// Package providers contains the outbound API client layer: provider-agnostic
// request/response types, typed errors, and a base HTTP client with connection
// pooling, retries and health tracking that concrete adapters embed.
//
// Two provider roles exist:
//
//   - ChatProvider: chat completions (the openai subpackage).
//   - SpeechProvider: text-to-speech, speech-to-text and conversational agent
//     lookup (the elevenlabs subpackage).
//
// Adapters translate between the agnostic types in this package and their
// wire formats; callers never see provider-specific JSON.
package providers
