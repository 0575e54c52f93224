package http

import (
	"net/http"

	"github.com/dkurbatov/lifehub/internal/utils"
)

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread") == "true"

	notifications, err := h.services.NotificationService.List(r.Context(), unreadOnly)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, notifications, http.StatusOK)
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	result, err := h.services.NotificationService.MarkAsRead(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.NotificationService.MarkAllAsRead(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}
