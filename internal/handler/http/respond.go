// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/service"
	"github.com/MKhiriev/airline-guard/internal/utils"
	"github.com/MKhiriev/airline-guard/internal/validators"
	"github.com/MKhiriev/airline-guard/models"
)

// writeError logs err and answers with the mapped status and an
// [models.ErrorResponse]. Server faults are logged at error level, client
// faults at warn.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	response := models.ErrorResponse{Error: publicMessage(err, status)}
	var passwordErr *validators.PasswordError
	if errors.As(err, &passwordErr) {
		response.Error = validators.ErrWeakPassword.Error()
		response.Details = passwordErr.Violations
	}

	utils.WriteJSON(w, response, status)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// identityFromRequest returns the caller stored by the auth middleware and
// answers 401 when there is none.
func identityFromRequest(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthorized, "request reached a protected handler without identity")
	}
	return identity, ok
}

// clientIP reads RemoteAddr, which middleware.RealIP rewrites when proxy
// headers are trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func int64URLParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", service.ErrInvalidInput, name)
	}
	return value, nil
}

// uint64Query reads an optional non-negative query parameter; absent means 0.
func uint64Query(r *http.Request, name string) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", service.ErrInvalidInput, name)
	}
	return value, nil
}

func setBearer(w http.ResponseWriter, token string) {
	if token != "" {
		w.Header().Set("Authorization", "Bearer "+token)
	}
}
