// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/airline-guard/internal/service"
)

// requireCurrentPassword blocks callers whose password must be changed.
// Routes that stay reachable (password change, logout, two-factor setup)
// are registered outside of it.
func (h *Handler) requireCurrentPassword(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r)
		if !ok {
			return
		}
		if identity.MustChangePassword {
			writeError(w, r, ErrPasswordChangeRequired, "password change required before using this route")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireRole admits callers holding minimum or a higher ranked role.
func (h *Handler) requireRole(minimum string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := identityFromRequest(w, r)
			if !ok {
				return
			}
			if !h.services.Roles.AtLeast(identity.Roles, minimum) {
				writeError(w, r, fmt.Errorf("%w: role %q required", service.ErrForbidden, minimum), "role gate rejected caller")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
