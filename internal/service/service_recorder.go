// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/store"
	"github.com/MKhiriev/airline-guard/models"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// recorderService appends login attempts and administrative changes. Rows
// are never updated; the retention engine is the only deleter.
type recorderService struct {
	logins store.LoginHistoryRepository
	audits store.AuditLogRepository
	appLog store.ApplicationLogRepository
	now    func() time.Time

	logger *logger.Logger
}

func NewRecorderService(logins store.LoginHistoryRepository, audits store.AuditLogRepository, appLog store.ApplicationLogRepository, logger *logger.Logger) RecorderService {
	return &recorderService{
		logins: logins,
		audits: audits,
		appLog: appLog,
		now:    time.Now,
		logger: logger,
	}
}

func (r *recorderService) RecordLogin(ctx context.Context, attempt models.LoginAttempt) error {
	entry := models.LoginHistoryEntry{
		UserID:            attempt.UserID,
		UserEmail:         attempt.Email,
		LoginTime:         r.now().UTC(),
		Success:           attempt.Success,
		FailureReason:     attempt.FailureReason,
		RequiredTwoFactor: attempt.RequiredTwoFactor,
		ClientInfo:        parseClientInfo(attempt.IPAddress, attempt.UserAgent),
	}

	if err := r.logins.SaveLoginHistory(ctx, entry); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recorderService.RecordLogin").Int64("user_id", attempt.UserID).Msg("error recording login attempt")
		return mapStoreError(err)
	}
	return nil
}

func (r *recorderService) RecordAudit(ctx context.Context, record models.AuditRecord) error {
	entry := models.AuditLogEntry{
		UserID:          record.SubjectUserID,
		UserEmail:       record.SubjectEmail,
		ModifiedBy:      record.ModifierUserID,
		ModifiedByEmail: record.ModifierEmail,
		ModifiedAt:      r.now().UTC(),
		Action:          record.Action,
		Changes:         record.Changes,
		OldValues:       record.OldValues,
		NewValues:       record.NewValues,
	}

	if err := r.audits.SaveAuditLog(ctx, entry); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recorderService.RecordAudit").Str("action", record.Action).Msg("error recording audit entry")
		return mapStoreError(err)
	}
	return nil
}

func (r *recorderService) RecentLogins(ctx context.Context, userID int64, limit uint64) ([]models.LoginHistoryEntry, error) {
	entries, err := r.logins.ListLoginHistory(ctx, userID, clampLimit(limit))
	if err != nil {
		return nil, mapStoreError(err)
	}
	return entries, nil
}

func (r *recorderService) AuditTrail(ctx context.Context, userID int64, limit uint64) ([]models.AuditLogEntry, error) {
	entries, err := r.audits.ListAuditLogs(ctx, userID, clampLimit(limit))
	if err != nil {
		return nil, mapStoreError(err)
	}
	return entries, nil
}

func (r *recorderService) ApplicationLogs(ctx context.Context, limit uint64) ([]models.ApplicationLog, error) {
	entries, err := r.appLog.ListApplicationLogs(ctx, clampLimit(limit))
	if err != nil {
		return nil, mapStoreError(err)
	}
	return entries, nil
}

func clampLimit(limit uint64) uint64 {
	switch {
	case limit == 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}
