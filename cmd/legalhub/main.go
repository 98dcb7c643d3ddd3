// Legal Hub is the backend for the Prados de Paraíso legal assistant.
//
// It serves a JSON API for a Spanish-language real-estate legal assistant:
//   - Text chat backed by OpenAI chat completions
//   - Voice chat and conversational agents backed by ElevenLabs
//   - Plain text-to-speech synthesis
//   - Conversation history with scheduled retention pruning
//
// Usage:
//
//	# Start the server with default configuration
//	legalhub run
//
//	# Start with a custom configuration file
//	legalhub run --config /path/to/config.yaml
//
//	# Show version information
//	legalhub version
package main

func main() {
	Execute()
}
