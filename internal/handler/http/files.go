package http

import (
	"net/http"

	"github.com/dkurbatov/lifehub/internal/utils"
	"github.com/dkurbatov/lifehub/models"
)

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	files, err := h.services.FileService.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, files, http.StatusOK)
}

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	var data models.UploadFileRequest
	if !decodeBody(w, r, &data) {
		return
	}

	file, err := h.services.FileService.Upload(r.Context(), data)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, file, http.StatusCreated)
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	result, err := h.services.FileService.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}
