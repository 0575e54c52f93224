package http

import (
	"net/http"

	"github.com/dkurbatov/lifehub/internal/utils"
	"github.com/dkurbatov/lifehub/models"
)

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := idParam(w, r, "postID")
	if !ok {
		return
	}

	comments, err := h.services.CommentService.ListByPost(r.Context(), postID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	var data models.CreateCommentRequest
	if !decodeBody(w, r, &data) {
		return
	}

	result, err := h.services.CommentService.Create(r.Context(), data)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	result, err := h.services.CommentService.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}
