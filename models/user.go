// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Theme values accepted for a user's preferred theme.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// User is the identity-store account record the engine reads and mutates.
// Sensitive fields are never serialized.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// DisplayName is a non-sensitive name shown in UI and audit trails.
	DisplayName string `json:"display_name"`

	// PasswordHash is the argon2id PHC string of the user's password.
	PasswordHash string `json:"-"`

	// SecurityStamp changes whenever credentials or 2FA state change.
	// Tokens minted under an older stamp are rejected.
	SecurityStamp string `json:"-"`

	// PasswordChangedAt is nil for accounts that never set a password
	// themselves (admin provisioned or migrated).
	PasswordChangedAt *time.Time `json:"password_changed_at,omitempty"`

	// MustChangePassword blocks everything except the password change flow.
	MustChangePassword bool `json:"must_change_password"`

	// TwoFactorEnabled is true once an authenticator has been confirmed.
	TwoFactorEnabled bool `json:"two_factor_enabled"`

	// AuthenticatorKey is the base32 TOTP secret. While TwoFactorEnabled is
	// false a non-empty key means enrollment is pending verification.
	AuthenticatorKey string `json:"-"`

	// LockoutEnabled reports whether failed attempts may lock this account.
	LockoutEnabled bool `json:"lockout_enabled"`

	// FailedAccessCount counts consecutive failed sign-in attempts.
	FailedAccessCount int `json:"failed_access_count"`

	// LockoutEnd is the time until which sign-in is refused.
	LockoutEnd *time.Time `json:"lockout_end,omitempty"`

	// PreferredTheme is one of ThemeAuto, ThemeLight or ThemeDark.
	PreferredTheme string `json:"preferred_theme"`

	// Roles is populated by the repository on reads that need it.
	Roles []string `json:"roles,omitempty"`

	// HighestRole is filled for listings according to the role hierarchy.
	HighestRole string `json:"highest_role,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsLockedOut reports whether the account is locked at the given instant.
func (u User) IsLockedOut(now time.Time) bool {
	return u.LockoutEnd != nil && u.LockoutEnd.After(now)
}

// TwoFactorPending reports whether an enrollment was started but not confirmed.
func (u User) TwoFactorPending() bool {
	return !u.TwoFactorEnabled && u.AuthenticatorKey != ""
}

// ValidTheme reports whether theme is an accepted preferred theme value.
func ValidTheme(theme string) bool {
	switch theme {
	case ThemeAuto, ThemeLight, ThemeDark:
		return true
	}
	return false
}

// Identity is the authenticated caller threaded explicitly into engine calls.
type Identity struct {
	UserID    int64    `json:"user_id"`
	Email     string   `json:"email"`
	SessionID string   `json:"session_id"`
	Roles     []string `json:"roles"`

	// MustChangePassword restricts the caller to the password change flow.
	MustChangePassword bool `json:"must_change_password"`
}
