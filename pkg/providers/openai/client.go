package openai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"prados-hq/legalhub/pkg/providers"
)

// Config configures the OpenAI adapter.
type Config struct {
	providers.ProviderConfig

	// Model is the default model for requests that do not name one.
	Model string

	// Temperature is the default sampling temperature.
	Temperature float64

	// MaxTokens is the default reply length bound.
	MaxTokens int
}

// Client is the OpenAI chat completion adapter.
// It implements the providers.ChatProvider interface.
//
// A Client without an API key is valid: IsConfigured reports false and
// Complete fails fast with a NotConfiguredError, letting the service start
// degraded instead of crashing.
type Client struct {
	*providers.HTTPProvider

	model       string
	temperature float64
	maxTokens   int
}

// NewClient creates a new OpenAI adapter.
func NewClient(cfg Config) *Client {
	if cfg.Name == "" {
		cfg.Name = "openai"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = 100
	}
	if cfg.MaxIdleConnsPerHost == 0 {
		cfg.MaxIdleConnsPerHost = 10
	}

	c := &Client{
		HTTPProvider: providers.NewHTTPProvider(cfg.ProviderConfig),
		model:        cfg.Model,
		temperature:  cfg.Temperature,
		maxTokens:    cfg.MaxTokens,
	}

	slog.Info("openai provider initialized",
		"provider", cfg.Name,
		"base_url", cfg.BaseURL,
		"model", cfg.Model,
		"configured", c.IsConfigured(),
	)

	return c
}

// Complete sends a chat completion request.
func (c *Client) Complete(ctx context.Context, req *providers.ChatRequest) (*providers.ChatResponse, error) {
	if !c.IsConfigured() {
		return nil, &providers.NotConfiguredError{Provider: c.GetName()}
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	wireReq := c.transformRequest(req)

	url := fmt.Sprintf("%s/chat/completions", c.GetConfig().BaseURL)
	headers := map[string]string{
		"Authorization": "Bearer " + c.GetConfig().APIKey,
		"Content-Type":  "application/json",
	}

	start := time.Now()
	var wireResp chatCompletionResponse
	if err := c.DoJSONRequest(ctx, "POST", url, wireReq, &wireResp, headers); err != nil {
		c.ObserveCall("complete", start, err)
		return nil, err
	}

	resp, err := transformResponse(&wireResp)
	if err != nil {
		parseErr := &providers.ParseError{
			Provider: c.GetName(),
			Cause:    err,
		}
		c.ObserveCall("complete", start, parseErr)
		return nil, parseErr
	}
	c.ObserveCall("complete", start, nil)
	c.ObserveTokens(resp.Model, resp.Usage)

	slog.Debug("completion request succeeded",
		"provider", c.GetName(),
		"model", resp.Model,
		"tokens", resp.Usage.TotalTokens,
	)

	return resp, nil
}

// validateRequest checks the request before any network call.
func validateRequest(req *providers.ChatRequest) error {
	if req == nil {
		return &providers.ValidationError{Field: "request", Message: "request is nil"}
	}
	if len(req.Messages) == 0 {
		return &providers.ValidationError{Field: "messages", Message: "at least one message is required"}
	}
	for i, msg := range req.Messages {
		if msg.Role == "" {
			return &providers.ValidationError{
				Field:   fmt.Sprintf("messages[%d].role", i),
				Message: "role is required",
			}
		}
		if msg.Content == "" {
			return &providers.ValidationError{
				Field:   fmt.Sprintf("messages[%d].content", i),
				Message: "content is required",
			}
		}
	}
	return nil
}
