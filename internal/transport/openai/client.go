// Package openai implements the LLM collaborators (router, title extractor,
// answer synthesizer) on top of an OpenAI-compatible chat completion API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/serapeum-ai/serapeum/internal/domain"
	"github.com/serapeum-ai/serapeum/internal/metrics"
)

// Client talks to an OpenAI-compatible chat completion endpoint.
type Client struct {
	client    *openai.Client
	model     string
	maxTitles int
	logger    *zap.Logger
}

// Config holds the LLM provider settings.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTitles int // extraction cap, defaults to 3
	Logger    *zap.Logger
}

// NewClient creates an LLM client.
func NewClient(cfg *Config) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	maxTitles := cfg.MaxTitles
	if maxTitles <= 0 {
		maxTitles = defaultMaxTitles
	}

	return &Client{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTitles: maxTitles,
		logger:    logger,
	}
}

// complete runs one chat completion and returns the first choice's content.
// role labels the call for metrics (router, extractor, synthesizer).
func (c *Client) complete(ctx context.Context, role, system, user string, jsonOutput bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}
	if jsonOutput {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)

	if err != nil {
		metrics.LLMRequestsTotal.WithLabelValues(role, "error").Inc()
		return "", parseAPIError(err)
	}
	if len(resp.Choices) == 0 {
		metrics.LLMRequestsTotal.WithLabelValues(role, "error").Inc()
		return "", fmt.Errorf("empty completion response: %w", domain.ErrProviderError)
	}

	metrics.LLMRequestsTotal.WithLabelValues(role, "success").Inc()
	metrics.LLMRequestDuration.WithLabelValues(role).Observe(duration.Seconds())

	return resp.Choices[0].Message.Content, nil
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrProviderError.
func parseAPIError(err error) error {
	wrap := domain.ErrProviderError

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("llm API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("llm API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("llm request failed: %w", wrap)
}
