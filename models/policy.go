// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PasswordPolicy is the resolved set of password complexity rules.
type PasswordPolicy struct {
	RequireDigit           bool `json:"require_digit"`
	RequireLowercase       bool `json:"require_lowercase"`
	RequireUppercase       bool `json:"require_uppercase"`
	RequireNonAlphanumeric bool `json:"require_non_alphanumeric"`
	RequiredLength         int  `json:"required_length"`
	RequiredUniqueChars    int  `json:"required_unique_chars"`
}

// DefaultPasswordPolicy is used key by key when configuration is missing or
// unparsable.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		RequireDigit:           true,
		RequireLowercase:       true,
		RequireUppercase:       true,
		RequireNonAlphanumeric: false,
		RequiredLength:         8,
		RequiredUniqueChars:    1,
	}
}

// LockoutPolicy is the resolved account lockout configuration.
// MaxFailedAttempts == 0 disables lockout entirely.
type LockoutPolicy struct {
	MaxFailedAttempts int `json:"max_failed_attempts"`
	LockoutMinutes    int `json:"lockout_minutes"`
}

// Default lockout values.
const (
	DefaultMaxFailedAttempts      = 5
	DefaultLockoutMinutes         = 30
	DefaultPasswordExpirationDays = 90
)

// DefaultLockoutPolicy returns the lockout policy used when configuration is
// missing.
func DefaultLockoutPolicy() LockoutPolicy {
	return LockoutPolicy{MaxFailedAttempts: DefaultMaxFailedAttempts, LockoutMinutes: DefaultLockoutMinutes}
}

// Enabled reports whether failed attempts lead to a lockout.
func (p LockoutPolicy) Enabled() bool {
	return p.MaxFailedAttempts > 0
}

// Duration returns the lockout window.
func (p LockoutPolicy) Duration() time.Duration {
	return time.Duration(p.LockoutMinutes) * time.Minute
}

// PasswordPolicyView is what the admin API returns for the password policy.
type PasswordPolicyView struct {
	Policy       PasswordPolicy `json:"policy"`
	Requirements []string       `json:"requirements"`
	Lockout      LockoutPolicy  `json:"lockout"`
}
