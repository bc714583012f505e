// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// RetentionCategory names a group of records the retention engine can purge.
type RetentionCategory string

const (
	RetentionApplicationLogs  RetentionCategory = "applicationLogs"
	RetentionLoginHistory     RetentionCategory = "loginHistory"
	RetentionAuditLogs        RetentionCategory = "auditLogs"
	RetentionInactiveSessions RetentionCategory = "inactiveSessions"
)

// RetentionCategories lists every category in cleanup order.
var RetentionCategories = []RetentionCategory{
	RetentionApplicationLogs,
	RetentionLoginHistory,
	RetentionAuditLogs,
	RetentionInactiveSessions,
}

// ParseRetentionCategory validates a category name coming from a caller.
func ParseRetentionCategory(s string) (RetentionCategory, error) {
	for _, c := range RetentionCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown retention category %q", s)
}

// RetentionConfig is derived from the "Data Retention" configuration
// category. A value of 0 days means retain forever.
type RetentionConfig struct {
	ApplicationLogsDays  int  `json:"application_logs_days"`
	LoginHistoryDays     int  `json:"login_history_days"`
	AuditLogsDays        int  `json:"audit_logs_days"`
	InactiveSessionsDays int  `json:"inactive_sessions_days"`
	EnableAutoCleanup    bool `json:"enable_auto_cleanup"`
}

// DefaultRetentionConfig returns the retention windows used when
// configuration is missing.
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		ApplicationLogsDays:  90,
		LoginHistoryDays:     180,
		AuditLogsDays:        365,
		InactiveSessionsDays: 30,
		EnableAutoCleanup:    true,
	}
}

// Days returns the retention window configured for category.
func (c RetentionConfig) Days(category RetentionCategory) int {
	switch category {
	case RetentionApplicationLogs:
		return c.ApplicationLogsDays
	case RetentionLoginHistory:
		return c.LoginHistoryDays
	case RetentionAuditLogs:
		return c.AuditLogsDays
	case RetentionInactiveSessions:
		return c.InactiveSessionsDays
	}
	return 0
}

// RetentionResult summarises one CleanupAll run.
type RetentionResult struct {
	Deleted      map[RetentionCategory]int64 `json:"deleted"`
	TotalDeleted int64                       `json:"total_deleted"`
	ExecutedAt   time.Time                   `json:"executed_at"`
	Duration     time.Duration               `json:"duration"`

	// Skipped is true when automatic cleanup is disabled.
	Skipped bool `json:"skipped"`
}

// CategoryStatistics describes one retention category without deleting
// anything.
type CategoryStatistics struct {
	Total    int64      `json:"total"`
	Oldest   *time.Time `json:"oldest,omitempty"`
	Eligible int64      `json:"eligible"`
}

// RetentionStatistics is the operator view over all retention categories.
type RetentionStatistics struct {
	Config      RetentionConfig                          `json:"config"`
	Categories  map[RetentionCategory]CategoryStatistics `json:"categories"`
	GeneratedAt time.Time                                `json:"generated_at"`
}
