package http

import (
	"errors"
	"net/http"

	"github.com/dkurbatov/lifehub/internal/adapter"
	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/service"
	"github.com/dkurbatov/lifehub/internal/store"
	"github.com/dkurbatov/lifehub/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:             http.StatusBadRequest,
	service.ErrAuthenticationRequired: http.StatusUnauthorized,
	service.ErrAccessDenied:           http.StatusForbidden,

	store.ErrNotFound:         http.StatusNotFound,
	store.ErrSlugAlreadyTaken: http.StatusConflict,

	adapter.ErrUpstream: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps the error to its status code and writes a JSON error
// body. Unclassified errors come back as a bare 500 so internals never leak
// to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
		message = http.StatusText(http.StatusInternalServerError)
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, errorResponse{Error: message}, status)
}
