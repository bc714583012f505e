// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/utils"
	"github.com/MKhiriev/airline-guard/models"
)

// maintenanceExemptPrefixes stay reachable while maintenance mode is on, so
// that operators can sign in and monitoring keeps working.
var maintenanceExemptPrefixes = []string{
	"/api/auth/",
	"/api/maintenance",
	"/metrics",
	"/healthz",
}

// withMaintenance answers 503 with the maintenance status while maintenance
// mode is enabled. Callers holding the bypass role are let through; the
// status is read per request so toggling the mode needs no restart.
func (h *Handler) withMaintenance(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if maintenanceExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		status := h.services.MaintenanceService.Status(r.Context())
		if !status.Enabled || h.bypassesMaintenance(r) {
			next.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Debug().Str("uri", r.RequestURI).Msg("request refused during maintenance")
		utils.WriteJSON(w, models.MaintenanceResponse{
			Error:             ErrMaintenance.Error(),
			MaintenanceStatus: status,
		}, http.StatusServiceUnavailable)
	})
}

func (h *Handler) bypassesMaintenance(r *http.Request) bool {
	if h.security.MaintenanceBypassRole == "" || r.Header.Get("Authorization") == "" {
		return false
	}

	identity, err := h.authenticate(r)
	if err != nil {
		return false
	}
	return h.services.Roles.AtLeast(identity.Roles, h.security.MaintenanceBypassRole)
}

func maintenanceExempt(path string) bool {
	for _, prefix := range maintenanceExemptPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
