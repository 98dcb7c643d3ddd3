package middleware

// contextKey is a private type for request context values so keys cannot
// collide with other packages.
type contextKey string

const (
	// RequestIDKey holds the request correlation ID.
	RequestIDKey contextKey = "request_id"

	// StartTimeKey holds the time the request entered the chain.
	StartTimeKey contextKey = "start_time"
)
