// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginRequest is the password step of a sign-in.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`

	// RememberDeviceToken is a token previously returned by a second-factor
	// sign-in with remember_device set.
	RememberDeviceToken string `json:"remember_device_token,omitempty"`

	ClientIP  string `json:"-"`
	UserAgent string `json:"-"`
}

// TwoFactorLoginRequest completes a pending sign-in with an authenticator or
// recovery code.
type TwoFactorLoginRequest struct {
	PendingToken   string `json:"pending_token"`
	Code           string `json:"code"`
	RememberDevice bool   `json:"remember_device"`

	ClientIP  string `json:"-"`
	UserAgent string `json:"-"`
}

// LoginStatus tells the caller which step comes next.
type LoginStatus string

const (
	LoginSucceeded         LoginStatus = "succeeded"
	LoginRequiresTwoFactor LoginStatus = "requires_two_factor"
)

// LoginResult is the outcome of a successful password or second-factor step.
type LoginResult struct {
	Status              LoginStatus `json:"status"`
	AccessToken         string      `json:"access_token,omitempty"`
	ExpiresAt           *time.Time  `json:"expires_at,omitempty"`
	SessionID           string      `json:"session_id,omitempty"`
	PendingToken        string      `json:"pending_token,omitempty"`
	RememberDeviceToken string      `json:"remember_device_token,omitempty"`
	MustChangePassword  bool        `json:"must_change_password"`
	DaysUntilExpiration *int        `json:"days_until_expiration,omitempty"`
}

// ChangePasswordRequest is submitted by a signed-in user.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ForgotPasswordRequest starts the mailed password reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest finishes the mailed password reset flow.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// CreateUserRequest provisions an account from the admin API.
type CreateUserRequest struct {
	Email       string   `json:"email"`
	DisplayName string   `json:"display_name"`
	Password    string   `json:"password"`
	Roles       []string `json:"roles"`
}

// SetRolesRequest replaces a user's role set.
type SetRolesRequest struct {
	Roles []string `json:"roles"`
}

// AdminResetPasswordRequest sets a temporary password for a user.
type AdminResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// ThemeRequest updates the caller's preferred theme.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ConfigUpdateRequest sets several keys of one category at once.
type ConfigUpdateRequest struct {
	Values map[string]string `json:"values"`
}

// CodeRequest carries a single 2FA code.
type CodeRequest struct {
	Code string `json:"code"`
}
