// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/airline-guard/internal/service"
	"github.com/MKhiriev/airline-guard/internal/store"
	"github.com/MKhiriev/airline-guard/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrPasswordChangeRequired:     http.StatusForbidden,
	ErrMaintenance:                http.StatusServiceUnavailable,

	service.ErrNotFound:           http.StatusNotFound,
	service.ErrInvalidInput:       http.StatusBadRequest,
	service.ErrInvalidCode:        http.StatusBadRequest,
	service.ErrLockedOut:          http.StatusLocked,
	service.ErrConflict:           http.StatusConflict,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrUnauthorized:       http.StatusUnauthorized,
	service.ErrForbidden:          http.StatusForbidden,

	validators.ErrWeakPassword:      http.StatusBadRequest,
	validators.ErrEmptyPassword:     http.StatusBadRequest,
	validators.ErrInvalidEmail:      http.StatusBadRequest,
	validators.ErrDisplayNameLength: http.StatusBadRequest,
	validators.ErrInvalidTheme:      http.StatusBadRequest,
	validators.ErrEmptyCode:         http.StatusBadRequest,
	validators.ErrEmptyToken:        http.StatusBadRequest,
	validators.ErrEmptyRoles:        http.StatusBadRequest,
	validators.ErrDuplicateRole:     http.StatusBadRequest,
	validators.ErrEmptyConfigValues: http.StatusBadRequest,

	store.ErrNotFound: http.StatusNotFound,
	store.ErrConflict: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage is the error text a client may see. Authentication failures
// are reduced to the status text so that no detail distinguishes an unknown
// account from a wrong password or a revoked session.
func publicMessage(err error, status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict:
		return err.Error()
	case http.StatusLocked:
		return service.ErrLockedOut.Error()
	case http.StatusUnauthorized:
		if errors.Is(err, service.ErrInvalidCredentials) {
			return service.ErrInvalidCredentials.Error()
		}
		return http.StatusText(status)
	case http.StatusForbidden:
		if errors.Is(err, ErrPasswordChangeRequired) {
			return ErrPasswordChangeRequired.Error()
		}
		return http.StatusText(status)
	default:
		return http.StatusText(status)
	}
}
