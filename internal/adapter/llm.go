package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dkurbatov/lifehub/internal/config"
	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/go-resty/resty/v2"
)

type llmClient struct {
	client *resty.Client
	model  string
	logger *logger.Logger
}

// NewLLMClient constructs a [LanguageModel] speaking the OpenAI-compatible
// chat-completions API at cfg.BaseURL. Returns an error when the base URL
// is empty or unparseable.
func NewLLMClient(cfg config.Assistant, logger *logger.Logger) (LanguageModel, error) {
	client, err := newRestyClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid assistant base url: %w", err)
	}

	return &llmClient{client: client, model: cfg.Model, logger: logger}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type       string      `json:"type"`
	JSONSchema *jsonSchema `json:"json_schema,omitempty"`
}

type jsonSchema struct {
	Name   string `json:"name"`
	Schema any    `json:"schema"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (l *llmClient) Complete(ctx context.Context, system, user string) (string, error) {
	return l.complete(ctx, chatCompletionRequest{
		Model: l.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
}

func (l *llmClient) CompleteJSON(ctx context.Context, system, user, schemaName string, schema any) (string, error) {
	return l.complete(ctx, chatCompletionRequest{
		Model: l.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: &responseFormat{
			Type:       "json_schema",
			JSONSchema: &jsonSchema{Name: schemaName, Schema: schema},
		},
	})
}

func (l *llmClient) complete(ctx context.Context, body chatCompletionRequest) (string, error) {
	resp, err := l.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: completion request: %v", ErrUpstream, err)
	}
	if err = mapUpstreamError(resp); err != nil {
		l.logger.Warn().Int("status", resp.StatusCode()).Msg("language model call failed")
		return "", err
	}

	var decoded chatCompletionResponse
	if err = json.Unmarshal(resp.Body(), &decoded); err != nil {
		return "", fmt.Errorf("%w: decode completion response: %v", ErrUpstream, err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("%w: completion response has no choices", ErrUpstream)
	}

	return decoded.Choices[0].Message.Content, nil
}
