// Package llm wraps the chat-completion model service used by all agents.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/cloudshift-ai/cloudshift/pkg/agent"
	"github.com/cloudshift-ai/cloudshift/pkg/config"
)

const (
	// rateLimitRetries bounds retries on model-service throttling.
	rateLimitRetries = 3
	rateLimitBackoff = 2 * time.Second
)

// Client is a thin wrapper over the chat-completion endpoint enforcing the
// service contract: bounded completion tokens, fixed temperature, and a
// standard function-choice policy.
type Client struct {
	api         *openai.Client
	deployment  string
	temperature float32
	maxTokens   int
}

// NewClient creates a model-service client from configuration.
// The endpoint is treated as an Azure OpenAI-compatible deployment.
func NewClient(cfg *config.ModelConfig) *Client {
	apiCfg := openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	apiCfg.APIVersion = cfg.APIVersion

	slog.Info("Model client configured",
		"endpoint", cfg.Endpoint,
		"deployment", cfg.Deployment,
		"max_completion_tokens", cfg.MaxCompletionTokens)

	return &Client{
		api:         openai.NewClientWithConfig(apiCfg),
		deployment:  cfg.Deployment,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxCompletionTokens,
	}
}

// CompletionRequest is one agent turn against the model service.
type CompletionRequest struct {
	Messages []agent.Message

	// MaxTokens overrides the client-wide completion-token cap when set.
	MaxTokens *int

	// Tools, when non-empty, are offered to the model under the standard
	// "auto" function-choice policy.
	Tools []openai.Tool
}

// Complete posts the conversation and returns the assistant reply content.
// Rate-limit responses are retried with linear backoff; other failures
// surface to the caller.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	chatReq := c.buildChatRequest(req)

	var lastErr error
	for attempt := 0; attempt <= rateLimitRetries; attempt++ {
		if attempt > 0 {
			slog.Warn("Model service throttled, backing off",
				"attempt", attempt,
				"backoff", time.Duration(attempt)*rateLimitBackoff)
			select {
			case <-time.After(time.Duration(attempt) * rateLimitBackoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		resp, err := c.api.CreateChatCompletion(ctx, chatReq)
		if err != nil {
			if isRateLimited(err) {
				lastErr = err
				continue
			}
			return "", fmt.Errorf("model service call failed: %w", err)
		}

		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("model service returned no choices")
		}
		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("model service rate limit persisted after %d retries: %w", rateLimitRetries, lastErr)
}

// buildChatRequest maps the conversation onto the wire request, applying
// the token cap and fixed temperature.
func (c *Client) buildChatRequest(req CompletionRequest) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    mapRole(msg.Role),
			Content: msg.Content,
			Name:    msg.AgentName,
		})
	}

	maxTokens := c.maxTokens
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       c.deployment,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: c.temperature,
	}
	if len(req.Tools) > 0 {
		chatReq.Tools = req.Tools
		chatReq.ToolChoice = "auto"
	}
	return chatReq
}

func mapRole(role agent.Role) string {
	switch role {
	case agent.RoleSystem:
		return openai.ChatMessageRoleSystem
	case agent.RoleAssistant:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}

// isRateLimited reports whether the error is a throttling response.
func isRateLimited(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return false
}
