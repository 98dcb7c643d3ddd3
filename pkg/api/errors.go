package api

import (
	"errors"
	"log/slog"
	"net/http"

	"prados-hq/legalhub/pkg/assistant"
	"prados-hq/legalhub/pkg/providers"
)

// HandleError maps a domain error to an HTTP response. Input problems keep
// their user-facing detail; upstream failures are collapsed into a generic
// message so provider internals never leak to clients.
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var (
		emptyInput    *assistant.EmptyInputError
		notConfigured *providers.NotConfiguredError
		validation    *providers.ValidationError
		rateLimit     *providers.RateLimitError
		timeout       *providers.TimeoutError
		auth          *providers.AuthError
		parse         *providers.ParseError
		provider      *providers.ProviderError
	)

	switch {
	case errors.As(err, &emptyInput):
		WriteError(w, http.StatusBadRequest, emptyInput.Detail)

	case errors.As(err, &notConfigured):
		WriteError(w, http.StatusServiceUnavailable, providerDisplayName(notConfigured.Provider)+" not configured")

	case errors.As(err, &validation):
		WriteError(w, http.StatusBadRequest, validation.Message)

	case errors.As(err, &rateLimit):
		logger.Warn("provider rate limited", "provider", rateLimit.Provider, "retry_after", rateLimit.RetryAfter)
		WriteError(w, http.StatusTooManyRequests, "Service is busy, please retry shortly")

	case errors.As(err, &timeout):
		logger.Warn("provider timeout", "provider", timeout.Provider, "timeout", timeout.Timeout)
		WriteError(w, http.StatusGatewayTimeout, "Upstream request timed out")

	case errors.As(err, &auth):
		logger.Error("provider authentication failed", "provider", auth.Provider)
		WriteError(w, http.StatusInternalServerError, "Error procesando consulta")

	case errors.As(err, &parse):
		logger.Error("provider response parse failed", "provider", parse.Provider, "error", err)
		WriteError(w, http.StatusInternalServerError, "Error procesando consulta")

	case errors.As(err, &provider):
		logger.Error("provider call failed", "provider", provider.Provider, "status", provider.StatusCode, "error", err)
		WriteError(w, http.StatusInternalServerError, "Error procesando consulta")

	default:
		logger.Error("request failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func providerDisplayName(name string) string {
	switch name {
	case "openai":
		return "OpenAI"
	case "elevenlabs":
		return "ElevenLabs"
	default:
		return name
	}
}
