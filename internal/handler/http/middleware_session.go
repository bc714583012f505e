// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/service"
)

// touchSession slides the caller's session expiry on every authenticated
// request. A session that stopped being active between authentication and
// the touch (swept or revoked concurrently) ends the request with 401.
func (h *Handler) touchSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r)
		if !ok {
			return
		}

		active, err := h.services.SessionService.Touch(r.Context(), identity.SessionID)
		if err != nil {
			// the session was valid a moment ago; serve the request anyway
			logger.FromRequest(r).Warn().Err(err).Str("session_id", identity.SessionID).Msg("error touching session")
		} else if !active {
			writeError(w, r, fmt.Errorf("%w: session is no longer active", service.ErrUnauthorized), "session ended during request")
			return
		}

		next.ServeHTTP(w, r)
	})
}
