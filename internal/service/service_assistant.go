package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dkurbatov/lifehub/internal/adapter"
	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/models"
)

const (
	summarySystemPrompt = "You are a concise writing assistant. Summarize the user's text in 2-3 sentences, in the language of the text."
	tagsSystemPrompt    = "You extract 3-5 short topical tags from the user's text. Reply with a JSON object of the form {\"tags\": [\"...\"]}."
	improveSystemPrompt = "You are an editor. Rewrite the user's text with better clarity and flow, keeping its language, meaning and tone. Reply with the revised text only."
)

// tagsSchema constrains the tag-generation reply to a JSON object with a
// single string-array field.
var tagsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"tags": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
	"required":             []string{"tags"},
	"additionalProperties": false,
}

type assistantService struct {
	llm adapter.LanguageModel

	logger *logger.Logger
}

func NewAssistantService(llm adapter.LanguageModel, logger *logger.Logger) AssistantService {
	return &assistantService{llm: llm, logger: logger}
}

func (a *assistantService) GenerateSummary(ctx context.Context, content string) (models.SummaryResult, error) {
	if err := a.checkRequest(ctx, content); err != nil {
		return models.SummaryResult{}, err
	}

	summary, err := a.llm.Complete(ctx, summarySystemPrompt, content)
	if err != nil {
		return models.SummaryResult{}, err
	}

	return models.SummaryResult{Summary: summary}, nil
}

func (a *assistantService) GenerateTags(ctx context.Context, content string) (models.TagsResult, error) {
	if err := a.checkRequest(ctx, content); err != nil {
		return models.TagsResult{}, err
	}

	raw, err := a.llm.CompleteJSON(ctx, tagsSystemPrompt, content, "tags", tagsSchema)
	if err != nil {
		return models.TagsResult{}, err
	}

	var result models.TagsResult
	if err = json.Unmarshal([]byte(raw), &result); err != nil {
		return models.TagsResult{}, fmt.Errorf("%w: decode tags reply: %v", adapter.ErrUpstream, err)
	}

	return result, nil
}

func (a *assistantService) ImproveWriting(ctx context.Context, content string) (models.ImproveResult, error) {
	if err := a.checkRequest(ctx, content); err != nil {
		return models.ImproveResult{}, err
	}

	improved, err := a.llm.Complete(ctx, improveSystemPrompt, content)
	if err != nil {
		return models.ImproveResult{}, err
	}

	return models.ImproveResult{Improved: improved}, nil
}

func (a *assistantService) checkRequest(ctx context.Context, content string) error {
	if content == "" {
		return validationError("content is required")
	}
	if _, err := callerFromContext(ctx); err != nil {
		return err
	}
	return nil
}
