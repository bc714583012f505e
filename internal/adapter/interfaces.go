// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the transport used by the admin command line client to
// talk to the airline-guard HTTP API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of the message
// the server returned (e.g. [ErrLocked] for 423, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/airline-guard/models"
)

// ServerAdapter covers the administrative surface of the server. Every call
// except Login requires a bearer token set through SetToken.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Login signs in with a password. When the account has two-factor
	// authentication enabled the result carries a pending token and no access
	// token is stored.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// CompleteTwoFactor finishes a pending sign-in with an authenticator code
	// and stores the issued access token.
	CompleteTwoFactor(ctx context.Context, req models.TwoFactorLoginRequest) (models.LoginResult, error)

	// Maintenance reports the current maintenance mode. It needs no token.
	Maintenance(ctx context.Context) (models.MaintenanceStatus, error)

	// RetentionOverview returns the effective retention windows and the
	// per-category row statistics.
	RetentionOverview(ctx context.Context) (models.RetentionOverview, error)

	// CleanupAll runs retention for every category.
	CleanupAll(ctx context.Context) (models.RetentionResult, error)

	// Cleanup runs retention for a single category and returns the number of
	// deleted rows.
	Cleanup(ctx context.Context, category models.RetentionCategory) (int64, error)

	// ConfigCategory lists the settings of one category. Encrypted values
	// come back masked.
	ConfigCategory(ctx context.Context, category string) ([]models.ConfigEntry, error)

	// UpdateConfigCategory writes several settings of one category at once.
	UpdateConfigCategory(ctx context.Context, category string, values map[string]string) error

	// Sessions lists the caller's active sessions.
	Sessions(ctx context.Context) ([]models.Session, error)

	// RevokeSession deactivates one of the caller's sessions.
	RevokeSession(ctx context.Context, sessionID string) error
}
