// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginAttempt is the write contract for recording a sign-in attempt.
type LoginAttempt struct {
	UserID            int64
	Email             string
	Success           bool
	IPAddress         string
	UserAgent         string
	RequiredTwoFactor bool
	FailureReason     string
}

// LoginHistoryEntry is an append-only record of a sign-in attempt.
type LoginHistoryEntry struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	UserEmail         string    `json:"user_email"`
	LoginTime         time.Time `json:"login_time"`
	Success           bool      `json:"success"`
	FailureReason     string    `json:"failure_reason,omitempty"`
	RequiredTwoFactor bool      `json:"required_two_factor"`
	ClientInfo
}

// TableName returns the name of the database table
// associated with the LoginHistoryEntry model.
func (l LoginHistoryEntry) TableName() string {
	return "user_login_histories"
}

// Failure reasons stored with unsuccessful attempts.
const (
	FailureInvalidPassword = "Invalid password"
	FailureLockedOut       = "Account locked out"
	FailureInvalid2FACode  = "Invalid authenticator code"
	FailureInvalidRecovery = "Invalid recovery code"
)
