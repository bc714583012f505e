// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session lifetimes applied on every create or refresh.
const (
	PersistentSessionTTL = 30 * 24 * time.Hour
	TransientSessionTTL  = time.Hour
)

// ClientInfo is advisory metadata parsed from the request. Every field is
// best effort and may be empty.
type ClientInfo struct {
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	Browser   string `json:"browser,omitempty"`
	OS        string `json:"os,omitempty"`
	Device    string `json:"device,omitempty"`
}

// Session is a server tracked liveness record correlated with an opaque,
// externally supplied session identifier. IsActive=false is a soft delete.
type Session struct {
	ID           int64      `json:"-"`
	SessionID    string     `json:"session_id"`
	UserID       int64      `json:"user_id"`
	UserEmail    string     `json:"user_email,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	LastActivity time.Time  `json:"last_activity_at"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	IsActive     bool       `json:"is_active"`
	IsPersistent bool       `json:"is_persistent"`
	ClientInfo

	// IsCurrent is set by the HTTP layer when listing the caller's sessions.
	IsCurrent bool `json:"is_current,omitempty"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "user_sessions"
}

// SessionTTL returns the rolling lifetime for a session.
func SessionTTL(persistent bool) time.Duration {
	if persistent {
		return PersistentSessionTTL
	}
	return TransientSessionTTL
}
