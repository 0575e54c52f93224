package http

import (
	"net/http"

	"github.com/dkurbatov/lifehub/internal/utils"
)

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.DashboardService.Stats(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, stats, http.StatusOK)
}
