package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/go-chi/chi/v5"
)

// idParam parses the named chi URL parameter as an int64 id. A non-numeric
// value writes a 400 and returns ok=false.
func idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.FromRequest(r).Warn().Str("param", name).Str("value", raw).Msg("invalid id parameter")
		http.Error(w, "invalid "+name+" parameter", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// decodeBody decodes the JSON request body into dst. A malformed body
// writes a 400 and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("invalid JSON body")
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

// dateQueryLayouts are the accepted formats for date query parameters.
var dateQueryLayouts = []string{time.RFC3339, "2006-01-02"}

// dateQuery parses a date query parameter. Missing or unparseable values
// return a zero time; the service layer decides whether that is an error.
func dateQuery(r *http.Request, name string) time.Time {
	raw := r.URL.Query().Get(name)
	for _, layout := range dateQueryLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
