package http

import (
	"net/http"

	"github.com/dkurbatov/lifehub/internal/utils"
)

type contentRequest struct {
	Content string `json:"content"`
}

type transcriptionRequest struct {
	AudioURL string `json:"audioUrl"`
	Language string `json:"language,omitempty"`
}

func (h *Handler) generateSummary(w http.ResponseWriter, r *http.Request) {
	var data contentRequest
	if !decodeBody(w, r, &data) {
		return
	}

	result, err := h.services.AssistantService.GenerateSummary(r.Context(), data.Content)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) generateTags(w http.ResponseWriter, r *http.Request) {
	var data contentRequest
	if !decodeBody(w, r, &data) {
		return
	}

	result, err := h.services.AssistantService.GenerateTags(r.Context(), data.Content)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) improveWriting(w http.ResponseWriter, r *http.Request) {
	var data contentRequest
	if !decodeBody(w, r, &data) {
		return
	}

	result, err := h.services.AssistantService.ImproveWriting(r.Context(), data.Content)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) transcribe(w http.ResponseWriter, r *http.Request) {
	var data transcriptionRequest
	if !decodeBody(w, r, &data) {
		return
	}

	result, err := h.services.VoiceService.Transcribe(r.Context(), data.AudioURL, data.Language)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}
