// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/utils"
	"github.com/MKhiriev/airline-guard/models"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.services.AccountService.Profile(ctx, identity.UserID)
	if err != nil {
		writeError(w, r, err, "error loading profile")
		return
	}

	utils.WriteJSON(w, models.AccountProfile{
		User:                 user,
		DaysUntilExpiration:  h.services.PasswordExpirationService.DaysUntilExpiration(ctx, user),
		PasswordRequirements: h.services.PasswordPolicyService.Describe(ctx),
	}, http.StatusOK)
}

func (h *Handler) setTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ThemeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid theme request")
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err, "invalid theme request")
		return
	}

	if err := h.services.AccountService.SetTheme(ctx, identity.UserID, req.Theme); err != nil {
		writeError(w, r, err, "error saving theme")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// changePassword rotates the caller's security stamp, so the response
// carries a fresh access token for the same session.
func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid change password request")
		return
	}

	if err := h.services.AccountService.ChangePassword(ctx, identity, req); err != nil {
		writeError(w, r, err, "password change failed")
		return
	}

	h.reissueToken(w, r, identity)
}

func (h *Handler) recentLogins(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	limit, err := uint64Query(r, "limit")
	if err != nil {
		writeError(w, r, err, "invalid limit")
		return
	}

	logins, err := h.services.RecorderService.RecentLogins(r.Context(), identity.UserID, limit)
	if err != nil {
		writeError(w, r, err, "error listing sign-in history")
		return
	}

	utils.WriteJSON(w, logins, http.StatusOK)
}

// reissueToken answers with a new access token after the caller's own
// credentials changed.
func (h *Handler) reissueToken(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	result, err := h.services.AuthService.RefreshToken(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, "error issuing a new access token")
		return
	}

	setBearer(w, result.AccessToken)
	utils.WriteJSON(w, result, http.StatusOK)
}

// audit records an administrative change. A failed write is logged and does
// not fail the request that already took effect.
func (h *Handler) audit(r *http.Request, record models.AuditRecord) {
	if err := h.services.RecorderService.RecordAudit(r.Context(), record); err != nil {
		logger.FromRequest(r).Err(err).Str("action", record.Action).Int64("user_id", record.SubjectUserID).Msg("error recording audit entry")
	}
}
