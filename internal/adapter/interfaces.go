// SPDX-License-Identifier: Apache-2.0

// Package adapter provides resty-based clients for the three external
// collaborators: the language-model service behind the AI assistant, the
// voice-transcription service, and the blob store holding uploaded files.
//
// Every client maps transport and non-2xx failures to [ErrUpstream] so
// callers can use [errors.Is] without knowing which collaborator failed.
// No client retries; a failed call surfaces immediately.
package adapter

import "context"

// LanguageModel is a single-turn completion client. The service layer owns
// the prompts; the adapter only moves them over the wire.
type LanguageModel interface {
	// Complete sends a system and user prompt and returns the model's text
	// reply.
	Complete(ctx context.Context, system, user string) (string, error)

	// CompleteJSON is Complete constrained to a JSON object response
	// matching the given schema. Returns the raw JSON text for the caller
	// to decode.
	CompleteJSON(ctx context.Context, system, user, schemaName string, schema any) (string, error)
}

// Transcriber converts recorded audio to text.
type Transcriber interface {
	// Transcribe fetches the audio at audioURL server-side and returns the
	// recognized text. Language is an optional BCP-47 hint; empty means
	// auto-detect.
	Transcribe(ctx context.Context, audioURL, language string) (Transcription, error)
}

// Transcription is the transcriber's reply.
type Transcription struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// BlobStorage stores uploaded file content outside the process.
type BlobStorage interface {
	// Put writes data under key and returns the public URL of the stored
	// object.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}
