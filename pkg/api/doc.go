// Package api implements the HTTP surface of the Legal Hub backend: the
// chat, speech and history endpoints, JSON response helpers and the mapping
// from domain errors to HTTP status codes.
package api
