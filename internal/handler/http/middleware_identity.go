package http

import (
	"net/http"

	"github.com/dkurbatov/lifehub/internal/logger"
	"github.com/dkurbatov/lifehub/internal/utils"
)

// identity resolves the caller for every request it wraps.
//
// A request may carry an optional "Authorization: Bearer <jwt>" header whose
// subject is the caller's openID. A present-but-invalid token is rejected
// with 401; an absent header falls back to the configured demo openID, so
// requests behind this middleware always reach the handler with a resolved
// caller in the context.
func (h *Handler) identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		openID := h.app.DemoOpenID

		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			tokenString, err := utils.ParseBearerToken(authHeader)
			if err != nil {
				log.Warn().Err(err).Msg("malformed authorization header")
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			token, err := utils.ValidateAndParseSessionToken(tokenString, h.app.TokenSignKey, h.app.TokenIssuer)
			if err != nil {
				log.Warn().Err(err).Msg("session token rejected")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			openID = token.OpenID
		}

		caller, err := h.services.IdentityService.Resolve(r.Context(), openID)
		if err != nil {
			respondError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithCaller(r.Context(), caller)))
	})
}
