package http

import (
	"net/http"

	"github.com/dkurbatov/lifehub/internal/utils"
	"github.com/dkurbatov/lifehub/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CategoryService.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	category, err := h.services.CategoryService.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var data models.CreateCategoryRequest
	if !decodeBody(w, r, &data) {
		return
	}

	result, err := h.services.CategoryService.Create(r.Context(), data)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusCreated)
}
