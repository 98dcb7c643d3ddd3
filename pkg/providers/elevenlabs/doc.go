// Package elevenlabs implements the speech adapter for the ElevenLabs API:
// text-to-speech, speech-to-text and conversational agent lookup.
//
// The adapter embeds providers.HTTPProvider and authenticates every call
// with the xi-api-key header. Agent lookups are best effort: callers fall
// back to the configured default agent voice when the lookup fails.
package elevenlabs
