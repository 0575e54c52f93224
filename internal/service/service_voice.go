package service

import (
	"context"

	"github.com/dkurbatov/lifehub/internal/adapter"
	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/models"
)

type voiceService struct {
	transcriber adapter.Transcriber

	logger *logger.Logger
}

func NewVoiceService(transcriber adapter.Transcriber, logger *logger.Logger) VoiceService {
	return &voiceService{transcriber: transcriber, logger: logger}
}

func (v *voiceService) Transcribe(ctx context.Context, audioURL, language string) (models.TranscriptionResult, error) {
	if audioURL == "" {
		return models.TranscriptionResult{}, validationError("audioUrl is required")
	}
	if _, err := callerFromContext(ctx); err != nil {
		return models.TranscriptionResult{}, err
	}

	transcription, err := v.transcriber.Transcribe(ctx, audioURL, language)
	if err != nil {
		return models.TranscriptionResult{}, err
	}

	return models.TranscriptionResult{Text: transcription.Text, Language: transcription.Language}, nil
}
