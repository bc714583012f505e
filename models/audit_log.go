// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Audit actions recorded by the engine. The column is free-form; these are
// the values the engine itself writes.
const (
	AuditUserCreated       = "UserCreated"
	AuditUserDeleted       = "UserDeleted"
	AuditRolesChanged      = "RolesChanged"
	AuditPasswordReset     = "PasswordReset"
	AuditPasswordChanged   = "PasswordChanged"
	AuditConfigChanged     = "ConfigurationChanged"
	AuditTwoFactorEnabled  = "TwoFactorEnabled"
	AuditTwoFactorDisabled = "TwoFactorDisabled"
)

// AuditRecord is the write contract of the audit recorder.
type AuditRecord struct {
	SubjectUserID  int64
	SubjectEmail   string
	ModifierUserID int64
	ModifierEmail  string
	Action         string
	Changes        string
	OldValues      string
	NewValues      string
}

// AuditLogEntry is an append-only administrative change record. The subject
// reference cascades on delete; the modifier reference is restricted.
type AuditLogEntry struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	UserEmail       string    `json:"user_email"`
	ModifiedBy      int64     `json:"modified_by"`
	ModifiedByEmail string    `json:"modified_by_email"`
	ModifiedAt      time.Time `json:"modified_at"`
	Action          string    `json:"action"`
	Changes         string    `json:"changes,omitempty"`
	OldValues       string    `json:"old_values,omitempty"`
	NewValues       string    `json:"new_values,omitempty"`
}

// TableName returns the name of the database table
// associated with the AuditLogEntry model.
func (a AuditLogEntry) TableName() string {
	return "user_audit_logs"
}
