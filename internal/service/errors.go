// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/airline-guard/internal/store"
)

var (
	// ErrNotFound: unknown configuration key, session id or user.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput: malformed theme, role, code or request value.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCode: a second-factor or recovery code did not verify.
	ErrInvalidCode = errors.New("invalid code")
	// ErrLockedOut is what callers show as the generic "account locked".
	ErrLockedOut = errors.New("account locked")
	// ErrConflict: duplicate session id, duplicate role assignment or a
	// referential constraint.
	ErrConflict = errors.New("conflict")
	// ErrUnavailable covers decryption and user agent parsing failures. It
	// never leaves this package.
	ErrUnavailable = errors.New("unavailable")

	// ErrInvalidCredentials is the single answer for unknown email and wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid login attempt")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// mapStoreError translates repository sentinels into the service taxonomy.
// Errors that are neither pass through unchanged.
func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrConflict):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return err
	}
}
