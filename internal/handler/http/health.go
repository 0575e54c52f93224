package http

import (
	"net/http"

	"github.com/dkurbatov/lifehub/internal/utils"
	"github.com/dkurbatov/lifehub/models"
)

func (h *Handler) listHealthRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.services.HealthService.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) getHealthRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	record, err := h.services.HealthService.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) createHealthRecord(w http.ResponseWriter, r *http.Request) {
	var data models.CreateHealthRecordRequest
	if !decodeBody(w, r, &data) {
		return
	}

	result, err := h.services.HealthService.Create(r.Context(), data)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) updateHealthRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var patch models.HealthRecordPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	result, err := h.services.HealthService.Update(r.Context(), models.UpdateHealthRecordRequest{ID: id, HealthRecordPatch: patch})
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) deleteHealthRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	result, err := h.services.HealthService.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}
