package openai

import (
	"fmt"

	"prados-hq/legalhub/pkg/providers"
)

// chatCompletionRequest is the OpenAI wire format for a completion request.
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []wireMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// wireMessage is the OpenAI wire format for a conversation message.
type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the OpenAI wire format for a completion response.
type chatCompletionResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// transformRequest converts an agnostic request to the OpenAI wire format,
// filling adapter defaults for unset fields.
func (c *Client) transformRequest(req *providers.ChatRequest) *chatCompletionRequest {
	wireReq := &chatCompletionRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]wireMessage, len(req.Messages)),
	}
	if wireReq.Model == "" {
		wireReq.Model = c.model
	}
	if wireReq.Temperature == 0 {
		wireReq.Temperature = c.temperature
	}
	if wireReq.MaxTokens == 0 {
		wireReq.MaxTokens = c.maxTokens
	}
	for i, msg := range req.Messages {
		wireReq.Messages[i] = wireMessage{Role: msg.Role, Content: msg.Content}
	}
	return wireReq
}

// transformResponse normalizes an OpenAI response to the agnostic format.
func transformResponse(resp *chatCompletionResponse) (*providers.ChatResponse, error) {
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("response contains no choices")
	}

	choice := resp.Choices[0]

	return &providers.ChatResponse{
		ID:           resp.ID,
		Model:        resp.Model,
		Content:      choice.Message.Content,
		FinishReason: normalizeFinishReason(choice.FinishReason),
		Usage: providers.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
		Created: resp.Created,
	}, nil
}

// normalizeFinishReason maps OpenAI finish reasons to the agnostic constants.
func normalizeFinishReason(reason string) string {
	switch reason {
	case "stop", "":
		return providers.FinishReasonStop
	case "length":
		return providers.FinishReasonLength
	case "content_filter":
		return providers.FinishReasonContentFilter
	default:
		return reason
	}
}
