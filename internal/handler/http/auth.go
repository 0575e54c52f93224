package http

import (
	"net/http"

	"github.com/dkurbatov/lifehub/internal/utils"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.IdentityService.Me(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.services.IdentityService.IssueToken(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, token, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.IdentityService.Logout(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}
