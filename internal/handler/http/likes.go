package http

import (
	"net/http"

	"github.com/dkurbatov/lifehub/internal/utils"
)

func (h *Handler) getLikes(w http.ResponseWriter, r *http.Request) {
	postID, ok := idParam(w, r, "postID")
	if !ok {
		return
	}

	summary, err := h.services.LikeService.GetByPost(r.Context(), postID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	postID, ok := idParam(w, r, "postID")
	if !ok {
		return
	}

	result, err := h.services.LikeService.Toggle(r.Context(), postID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}
