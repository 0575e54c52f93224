package http

import (
	"net/http"

	"github.com/dkurbatov/lifehub/internal/utils"
	"github.com/dkurbatov/lifehub/models"
)

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	documents, err := h.services.DocumentService.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, documents, http.StatusOK)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	document, err := h.services.DocumentService.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, document, http.StatusOK)
}

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	var data models.CreateDocumentRequest
	if !decodeBody(w, r, &data) {
		return
	}

	result, err := h.services.DocumentService.Create(r.Context(), data)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var patch models.DocumentPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	result, err := h.services.DocumentService.Update(r.Context(), models.UpdateDocumentRequest{ID: id, DocumentPatch: patch})
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	result, err := h.services.DocumentService.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) searchDocuments(w http.ResponseWriter, r *http.Request) {
	documents, err := h.services.DocumentService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, documents, http.StatusOK)
}
