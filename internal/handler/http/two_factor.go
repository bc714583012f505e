// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/airline-guard/internal/utils"
	"github.com/MKhiriev/airline-guard/models"
)

func (h *Handler) twoFactorStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	status, err := h.services.TwoFactorService.Status(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, err, "error reading two-factor status")
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) beginTwoFactor(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	enrollment, err := h.services.TwoFactorService.BeginEnrollment(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, err, "error starting two-factor enrollment")
		return
	}

	utils.WriteJSON(w, enrollment, http.StatusOK)
}

// confirmTwoFactor returns the recovery codes. They are shown exactly once.
func (h *Handler) confirmTwoFactor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid two-factor confirmation")
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err, "invalid two-factor confirmation")
		return
	}

	codes, err := h.services.TwoFactorService.ConfirmEnrollment(ctx, identity.UserID, req.Code)
	if err != nil {
		writeError(w, r, err, "two-factor confirmation failed")
		return
	}

	h.audit(r, selfAudit(identity, models.AuditTwoFactorEnabled, "Two-factor authentication enabled"))
	utils.WriteJSON(w, models.RecoveryCodes{Codes: codes}, http.StatusOK)
}

// disableTwoFactor rotates the security stamp; the caller keeps the session
// through the token in the response.
func (h *Handler) disableTwoFactor(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.TwoFactorService.Disable(r.Context(), identity.UserID); err != nil {
		writeError(w, r, err, "error disabling two-factor authentication")
		return
	}

	h.audit(r, selfAudit(identity, models.AuditTwoFactorDisabled, "Two-factor authentication disabled"))
	h.reissueToken(w, r, identity)
}

func (h *Handler) resetRecoveryCodes(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	codes, err := h.services.TwoFactorService.ResetRecoveryCodes(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, err, "error generating recovery codes")
		return
	}

	utils.WriteJSON(w, models.RecoveryCodes{Codes: codes}, http.StatusOK)
}

func selfAudit(identity models.Identity, action, changes string) models.AuditRecord {
	return models.AuditRecord{
		SubjectUserID:  identity.UserID,
		SubjectEmail:   identity.Email,
		ModifierUserID: identity.UserID,
		ModifierEmail:  identity.Email,
		Action:         action,
		Changes:        changes,
	}
}
