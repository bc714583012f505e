// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/airline-guard/internal/utils"
	"github.com/MKhiriev/airline-guard/models"
)

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	sessions, err := h.services.SessionService.ListActive(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, err, "error listing sessions")
		return
	}
	for i := range sessions {
		sessions[i].IsCurrent = sessions[i].SessionID == identity.SessionID
	}

	utils.WriteJSON(w, sessions, http.StatusOK)
}

// revokeOtherSessions signs the caller out everywhere except here.
func (h *Handler) revokeOtherSessions(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	n, err := h.services.SessionService.RevokeAllExcept(r.Context(), identity.UserID, identity.SessionID)
	if err != nil {
		writeError(w, r, err, "error revoking sessions")
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: n}, http.StatusOK)
}

func (h *Handler) revokeSession(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	if err := h.services.SessionService.RevokeOwned(r.Context(), identity.UserID, sessionID); err != nil {
		writeError(w, r, err, "error revoking session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
