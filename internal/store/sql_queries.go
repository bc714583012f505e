// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/airline-guard/models"
)

// Column lists shared by the repositories. The order matches the Scan calls
// of the corresponding scan helpers.
var (
	configColumns = []string{
		"key", "value", "category", "description", "is_encrypted", "last_modified", "last_modified_by",
	}

	userColumns = []string{
		"user_id", "email", "display_name", "password_hash", "security_stamp",
		"password_changed_at", "must_change_password", "two_factor_enabled", "authenticator_key",
		"lockout_enabled", "failed_access_count", "lockout_end", "preferred_theme", "created_at",
	}

	sessionColumns = []string{
		"id", "session_id", "user_id", "user_email", "created_at", "last_activity_at", "expires_at",
		"is_active", "is_persistent", "ip_address", "user_agent", "browser", "os", "device",
	}

	loginHistoryColumns = []string{
		"id", "user_id", "user_email", "login_time", "success", "failure_reason", "required_two_factor",
		"ip_address", "user_agent", "browser", "os", "device",
	}

	auditLogColumns = []string{
		"id", "user_id", "user_email", "modified_by", "modified_by_email", "modified_at",
		"action", "changes", "old_values", "new_values",
	}

	applicationLogColumns = []string{
		"id", "timestamp", "level", "message", "exception", "log_event",
	}
)

// sessionUpsertSuffix refreshes an existing row only when it belongs to the
// same user. PostgreSQL and SQLite both return no row when the WHERE clause
// of DO UPDATE rejects the update.
var sessionUpsertSuffix = "ON CONFLICT (session_id) DO UPDATE SET " +
	"last_activity_at = excluded.last_activity_at, " +
	"expires_at = excluded.expires_at, " +
	"is_persistent = excluded.is_persistent, " +
	"is_active = excluded.is_active " +
	"WHERE user_sessions.user_id = excluded.user_id " +
	"RETURNING " + strings.Join(sessionColumns, ", ")

// retentionTarget describes where the rows of a retention category live.
type retentionTarget struct {
	table string
	// timeColumn is compared against the cutoff.
	timeColumn string
	// inactiveOnly restricts the category to soft-deleted sessions.
	inactiveOnly bool
}

var retentionTargets = map[models.RetentionCategory]retentionTarget{
	models.RetentionApplicationLogs:  {table: "application_logs", timeColumn: "timestamp"},
	models.RetentionLoginHistory:     {table: "user_login_histories", timeColumn: "login_time"},
	models.RetentionAuditLogs:        {table: "user_audit_logs", timeColumn: "modified_at"},
	models.RetentionInactiveSessions: {table: "user_sessions", timeColumn: "last_activity_at", inactiveOnly: true},
}

func lookupRetentionTarget(category models.RetentionCategory) (retentionTarget, error) {
	target, ok := retentionTargets[category]
	if !ok {
		return retentionTarget{}, fmt.Errorf("%w: unknown retention category %q", ErrBuildingSQLQuery, category)
	}
	return target, nil
}
