package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dkurbatov/lifehub/internal/config"
	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/go-resty/resty/v2"
)

type transcriptionClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewTranscriptionClient constructs a [Transcriber] for the voice service
// at cfg.BaseURL.
func NewTranscriptionClient(cfg config.Voice, logger *logger.Logger) (Transcriber, error) {
	client, err := newRestyClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid voice base url: %w", err)
	}

	return &transcriptionClient{client: client, logger: logger}, nil
}

type transcriptionRequest struct {
	AudioURL string `json:"audioUrl"`
	Language string `json:"language,omitempty"`
}

func (t *transcriptionClient) Transcribe(ctx context.Context, audioURL, language string) (Transcription, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(transcriptionRequest{AudioURL: audioURL, Language: language}).
		Post("/v1/transcriptions")
	if err != nil {
		return Transcription{}, fmt.Errorf("%w: transcription request: %v", ErrUpstream, err)
	}
	if err = mapUpstreamError(resp); err != nil {
		t.logger.Warn().Int("status", resp.StatusCode()).Msg("transcription call failed")
		return Transcription{}, err
	}

	var decoded Transcription
	if err = json.Unmarshal(resp.Body(), &decoded); err != nil {
		return Transcription{}, fmt.Errorf("%w: decode transcription response: %v", ErrUpstream, err)
	}

	return decoded, nil
}
