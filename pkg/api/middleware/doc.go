// Package middleware provides the HTTP middleware chain for the Legal Hub
// API: panic recovery, request logging with metrics, request correlation
// IDs, CORS and per-request timeouts.
//
// The chain is applied outermost first:
//
//	Recovery -> Logging -> RequestID -> CORS -> Timeout -> mux
package middleware
