package http

import (
	"net/http"

	"github.com/dkurbatov/lifehub/internal/utils"
	"github.com/dkurbatov/lifehub/models"
)

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.services.FinanceService.ListTransactions(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, transactions, http.StatusOK)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	transaction, err := h.services.FinanceService.GetTransaction(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, transaction, http.StatusOK)
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var data models.CreateTransactionRequest
	if !decodeBody(w, r, &data) {
		return
	}

	result, err := h.services.FinanceService.CreateTransaction(r.Context(), data)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var patch models.TransactionPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	result, err := h.services.FinanceService.UpdateTransaction(r.Context(), models.UpdateTransactionRequest{ID: id, TransactionPatch: patch})
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	result, err := h.services.FinanceService.DeleteTransaction(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) financeSummary(w http.ResponseWriter, r *http.Request) {
	rng := models.SummaryRange{
		StartDate: dateQuery(r, "startDate"),
		EndDate:   dateQuery(r, "endDate"),
	}

	summary, err := h.services.FinanceService.GetSummary(r.Context(), rng)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) latestBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.services.FinanceService.GetLatestBalance(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, balance, http.StatusOK)
}

func (h *Handler) balanceHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.services.FinanceService.GetBalanceHistory(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, history, http.StatusOK)
}

func (h *Handler) updateBalance(w http.ResponseWriter, r *http.Request) {
	var data models.UpdateBalanceRequest
	if !decodeBody(w, r, &data) {
		return
	}

	result, err := h.services.FinanceService.UpdateBalance(r.Context(), data)
	if err != nil {
		respondError(w, r, err)
		return
	}
	_, _ = utils.WriteJSON(w, result, http.StatusCreated)
}
