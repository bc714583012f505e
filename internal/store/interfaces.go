// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/airline-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigRepository persists the provisioned key/value settings. Values are
// stored as given; encryption is the caller's concern.
type ConfigRepository interface {
	// GetConfig returns the entry for key or [ErrNotFound].
	GetConfig(ctx context.Context, key string) (models.ConfigEntry, error)
	// ListConfig returns the entries of one category, or all entries when
	// category is empty, ordered by key.
	ListConfig(ctx context.Context, category string) ([]models.ConfigEntry, error)
	// UpdateConfig overwrites value and modification stamps of an existing
	// key. It never creates rows and returns [ErrNotFound] for unknown keys.
	UpdateConfig(ctx context.Context, entry models.ConfigEntry) error
}

// UserRepository is the identity store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, userID int64) error

	GetRoles(ctx context.Context, userID int64) ([]string, error)
	SetRoles(ctx context.Context, userID int64, roles []string) error

	UpdatePassword(ctx context.Context, userID int64, passwordHash, stamp string, changedAt *time.Time, mustChange bool) error
	SetPasswordChangedAt(ctx context.Context, userID int64, changedAt time.Time) error
	SetMustChangePassword(ctx context.Context, userID int64, mustChange bool) error
	UpdateSecurityStamp(ctx context.Context, userID int64, stamp string) error
	SetPreferredTheme(ctx context.Context, userID int64, theme string) error

	// IncrementFailedAccess bumps the counter and returns its new value.
	IncrementFailedAccess(ctx context.Context, userID int64) (int, error)
	ResetFailedAccess(ctx context.Context, userID int64) error
	// SetLockoutEnd stores end (nil clears it) and resets the counter.
	SetLockoutEnd(ctx context.Context, userID int64, end *time.Time) error

	// SetTwoFactor stores the authenticator key and the enabled flag.
	SetTwoFactor(ctx context.Context, userID int64, enabled bool, authenticatorKey string) error
	// ReplaceRecoveryCodes deletes every code of the user and stores hashes.
	ReplaceRecoveryCodes(ctx context.Context, userID int64, hashes []string) error
	// RedeemRecoveryCode marks an unredeemed code as used, [ErrNotFound]
	// when no such code is left.
	RedeemRecoveryCode(ctx context.Context, userID int64, hash string, at time.Time) error
	CountRecoveryCodes(ctx context.Context, userID int64) (int, error)
	DeleteRecoveryCodes(ctx context.Context, userID int64) error
}

// SessionRepository stores session liveness records.
type SessionRepository interface {
	// UpsertSession inserts a new row or refreshes the row with the same
	// session id. [ErrConflict] when the id belongs to a different user.
	UpsertSession(ctx context.Context, session models.Session) (models.Session, error)
	GetSession(ctx context.Context, sessionID string) (models.Session, error)
	// TouchSession extends an active unexpired session. It reports whether a
	// row was updated.
	TouchSession(ctx context.Context, sessionID string, now time.Time) (bool, error)
	ListActiveSessions(ctx context.Context, userID int64, now time.Time) ([]models.Session, error)
	DeactivateSession(ctx context.Context, sessionID string) (int64, error)
	DeactivateUserSessions(ctx context.Context, userID int64, exceptSessionID string) (int64, error)
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
	CountActiveSessions(ctx context.Context, now time.Time) (int64, error)
}

// LoginHistoryRepository appends and reads login attempts.
type LoginHistoryRepository interface {
	SaveLoginHistory(ctx context.Context, entry models.LoginHistoryEntry) error
	ListLoginHistory(ctx context.Context, userID int64, limit uint64) ([]models.LoginHistoryEntry, error)
}

// AuditLogRepository appends and reads administrative changes.
type AuditLogRepository interface {
	SaveAuditLog(ctx context.Context, entry models.AuditLogEntry) error
	// ListAuditLogs returns the trail of one subject, or of everyone when
	// userID is zero, newest first.
	ListAuditLogs(ctx context.Context, userID int64, limit uint64) ([]models.AuditLogEntry, error)
}

// ApplicationLogRepository stores warn-and-above log events.
type ApplicationLogRepository interface {
	SaveApplicationLog(ctx context.Context, entry models.ApplicationLog) error
	ListApplicationLogs(ctx context.Context, limit uint64) ([]models.ApplicationLog, error)
}

// RetentionRepository deletes and measures aged rows per retention category.
type RetentionRepository interface {
	// DeleteBatch removes at most limit rows of category older than cutoff
	// and returns how many were removed.
	DeleteBatch(ctx context.Context, category models.RetentionCategory, cutoff time.Time, limit uint64) (int64, error)
	// DeleteOlderThan removes every row of category older than cutoff in one
	// statement.
	DeleteOlderThan(ctx context.Context, category models.RetentionCategory, cutoff time.Time) (int64, error)
	// Statistics reports total rows, oldest timestamp and the number of rows
	// older than cutoff. A nil cutoff means nothing is eligible.
	Statistics(ctx context.Context, category models.RetentionCategory, cutoff *time.Time) (models.CategoryStatistics, error)
}
