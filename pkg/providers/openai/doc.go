// Package openai implements the chat completion adapter for the OpenAI
// Chat Completions API (and compatible endpoints).
//
// The adapter embeds providers.HTTPProvider for pooling, retries and health
// tracking, and translates between the agnostic providers.ChatRequest /
// ChatResponse types and the OpenAI wire format.
package openai
