// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/airline-guard/internal/utils"
	"github.com/MKhiriev/airline-guard/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing users")
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid create user request")
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err, "invalid create user request")
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, identity, req)
	if err != nil {
		writeError(w, r, err, "error creating user")
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	userID, err := int64URLParam(r, "userID")
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), identity, userID); err != nil {
		writeError(w, r, err, "error deleting user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setUserRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	userID, err := int64URLParam(r, "userID")
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	var req models.SetRolesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid roles request")
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err, "invalid roles request")
		return
	}

	if err := h.services.UserService.SetRoles(ctx, identity, userID, req.Roles); err != nil {
		writeError(w, r, err, "error assigning roles")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminResetPassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	userID, err := int64URLParam(r, "userID")
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	var req models.AdminResetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid password reset request")
		return
	}

	if err := h.services.UserService.ResetPassword(r.Context(), identity, userID, req); err != nil {
		writeError(w, r, err, "admin password reset failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// auditTrail lists the newest entries, optionally of a single subject.
func (h *Handler) auditTrail(w http.ResponseWriter, r *http.Request) {
	userID, err := uint64Query(r, "user_id")
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}
	limit, err := uint64Query(r, "limit")
	if err != nil {
		writeError(w, r, err, "invalid limit")
		return
	}

	entries, err := h.services.RecorderService.AuditTrail(r.Context(), int64(userID), limit)
	if err != nil {
		writeError(w, r, err, "error listing audit trail")
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
