package http

import (
	"net/http"

	"github.com/dkurbatov/lifehub/internal/utils"
	"github.com/dkurbatov/lifehub/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPublishedPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.BlogService.ListPublished(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) listAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.BlogService.ListAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPostBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.BlogService.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) getPostByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	post, err := h.services.BlogService.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) listPostsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := idParam(w, r, "categoryID")
	if !ok {
		return
	}

	posts, err := h.services.BlogService.GetByCategory(r.Context(), categoryID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var data models.CreateBlogPostRequest
	if !decodeBody(w, r, &data) {
		return
	}

	result, err := h.services.BlogService.Create(r.Context(), data)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var patch models.BlogPostPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	result, err := h.services.BlogService.Update(r.Context(), models.UpdateBlogPostRequest{ID: id, BlogPostPatch: patch})
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	result, err := h.services.BlogService.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) searchPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.BlogService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, posts, http.StatusOK)
}
