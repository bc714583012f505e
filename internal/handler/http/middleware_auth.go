// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/utils"
	"github.com/MKhiriev/airline-guard/models"
)

// auth enforces bearer token authentication.
//
// The token is resolved through [service.AuthService.Authenticate], which
// rejects tokens minted under an older security stamp and tokens of revoked
// or expired sessions. On success the caller's [models.Identity] is stored
// in the request context and the request logger gains user_id.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity, err := h.authenticate(r)
		if err != nil {
			writeError(w, r, err, "request rejected by auth middleware")
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", identity.UserID)
		})
		ctx = l.WithContext(utils.WithIdentity(ctx, identity))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) authenticate(r *http.Request) (models.Identity, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return models.Identity{}, ErrEmptyAuthorizationHeader
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	return h.services.AuthService.Authenticate(r.Context(), token)
}
