package assistant

import "fmt"

// User-facing details for rejected input. The transcript messages are in
// Spanish because the frontend shows them to end users verbatim.
const (
	DetailTextRequired         = "Text is required"
	DetailEmptyTranscript      = "No se pudo transcribir el audio. Intenta hablar más claro."
	DetailEmptyAgentTranscript = "No se pudo transcribir el audio."
)

// EmptyInputError reports missing or unusable user input. The API layer
// maps it to 400 with Detail as the response body.
type EmptyInputError struct {
	// Field names the offending input ("text", "audio").
	Field string

	// Detail is the user-facing message.
	Detail string
}

// Error implements the error interface.
func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("empty input %q: %s", e.Field, e.Detail)
}
