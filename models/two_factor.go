// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RecoveryCodeCount is the number of recovery codes issued at once.
const RecoveryCodeCount = 10

// TwoFactorStatus is the account view of a user's two-factor state.
// SharedKey and AuthenticatorURI are only filled while enrollment is pending.
type TwoFactorStatus struct {
	Enabled           bool   `json:"enabled"`
	Pending           bool   `json:"pending"`
	SharedKey         string `json:"shared_key,omitempty"`
	AuthenticatorURI  string `json:"authenticator_uri,omitempty"`
	RecoveryCodesLeft int    `json:"recovery_codes_left"`
}

// TwoFactorEnrollment is returned when an enrollment starts.
type TwoFactorEnrollment struct {
	SharedKey        string `json:"shared_key"`
	AuthenticatorURI string `json:"authenticator_uri"`
}

// RecoveryCodes is returned exactly once when codes are issued.
type RecoveryCodes struct {
	Codes []string `json:"recovery_codes"`
}

// SignInResult is the explicit outcome of a second-factor or recovery-code
// sign-in. Callers branch on it instead of on errors.
type SignInResult int

const (
	SignInFailed SignInResult = iota
	SignInSucceeded
	SignInInvalidCode
	SignInLockedOut
)

func (r SignInResult) String() string {
	switch r {
	case SignInSucceeded:
		return "succeeded"
	case SignInInvalidCode:
		return "invalid_code"
	case SignInLockedOut:
		return "locked_out"
	default:
		return "failed"
	}
}

// PendingSignIn is the context carried between the password step and the
// second-factor step.
type PendingSignIn struct {
	UserID     int64
	Persistent bool
}
