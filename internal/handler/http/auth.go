// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/utils"
	"github.com/MKhiriev/airline-guard/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid login request")
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err, "invalid login request")
		return
	}
	req.ClientIP = clientIP(r)
	req.UserAgent = r.UserAgent()

	result, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err, "sign-in failed")
		return
	}

	logger.FromRequest(r).Debug().Str("status", string(result.Status)).Msg("sign-in processed")
	setBearer(w, result.AccessToken)
	utils.WriteJSON(w, result, http.StatusOK)
}

// signInCompleter finishes a sign-in that is waiting for its second factor.
type signInCompleter func(ctx context.Context, req models.TwoFactorLoginRequest) (models.LoginResult, error)

func (h *Handler) loginTwoFactor(w http.ResponseWriter, r *http.Request) {
	h.completeSignIn(w, r, h.services.AuthService.CompleteTwoFactor)
}

func (h *Handler) loginRecovery(w http.ResponseWriter, r *http.Request) {
	h.completeSignIn(w, r, h.services.AuthService.CompleteRecovery)
}

func (h *Handler) completeSignIn(w http.ResponseWriter, r *http.Request, complete signInCompleter) {
	ctx := r.Context()

	var req models.TwoFactorLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid second factor request")
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err, "invalid second factor request")
		return
	}
	req.ClientIP = clientIP(r)
	req.UserAgent = r.UserAgent()

	result, err := complete(ctx, req)
	if err != nil {
		writeError(w, r, err, "second factor sign-in failed")
		return
	}

	setBearer(w, result.AccessToken)
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), identity); err != nil {
		writeError(w, r, err, "error signing out")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// forgotPassword always answers 202 for a well-formed request, whether or
// not the address belongs to an account.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ForgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid forgot password request")
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err, "invalid forgot password request")
		return
	}

	if err := h.services.AccountService.ForgotPassword(ctx, req); err != nil {
		writeError(w, r, err, "error starting password reset")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ResetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "invalid password reset request")
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err, "invalid password reset request")
		return
	}

	if err := h.services.AccountService.ResetPassword(ctx, req); err != nil {
		writeError(w, r, err, "password reset failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
