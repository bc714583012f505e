// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/models"
)

// historyRepository holds the three append-only logs: login history, user
// audit trail and application log events.
type historyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewHistoryRepository returns a repository that satisfies
// [LoginHistoryRepository], [AuditLogRepository] and
// [ApplicationLogRepository].
func NewHistoryRepository(db *DB, logger *logger.Logger) *historyRepository {
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

func (h *historyRepository) SaveLoginHistory(ctx context.Context, entry models.LoginHistoryEntry) error {
	query, args, err := h.db.builder.
		Insert("user_login_histories").
		Columns(loginHistoryColumns[1:]...).
		Values(
			entry.UserID,
			entry.UserEmail,
			utc(entry.LoginTime),
			entry.Success,
			entry.FailureReason,
			entry.RequiredTwoFactor,
			entry.IPAddress,
			entry.UserAgent,
			entry.Browser,
			entry.OS,
			entry.Device,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = h.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*historyRepository.SaveLoginHistory").
			Int64("user_id", entry.UserID).
			Msg("error saving login history")
		return h.db.translate(ErrExecutingStatement, err)
	}
	return nil
}

func (h *historyRepository) ListLoginHistory(ctx context.Context, userID int64, limit uint64) ([]models.LoginHistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := h.db.builder.
		Select(loginHistoryColumns...).
		From("user_login_histories").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("login_time DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.ListLoginHistory").Int64("user_id", userID).Msg("error listing login history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.LoginHistoryEntry, 0, min(limit, 64))
	for rows.Next() {
		var e models.LoginHistoryEntry
		if err = rows.Scan(
			&e.ID,
			&e.UserID,
			&e.UserEmail,
			&e.LoginTime,
			&e.Success,
			&e.FailureReason,
			&e.RequiredTwoFactor,
			&e.IPAddress,
			&e.UserAgent,
			&e.Browser,
			&e.OS,
			&e.Device,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// SaveAuditLog appends an audit row. A modifier or subject that does not
// exist yields [ErrConflict].
func (h *historyRepository) SaveAuditLog(ctx context.Context, entry models.AuditLogEntry) error {
	query, args, err := h.db.builder.
		Insert("user_audit_logs").
		Columns(auditLogColumns[1:]...).
		Values(
			entry.UserID,
			entry.UserEmail,
			entry.ModifiedBy,
			entry.ModifiedByEmail,
			utc(entry.ModifiedAt),
			entry.Action,
			entry.Changes,
			entry.OldValues,
			entry.NewValues,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = h.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*historyRepository.SaveAuditLog").
			Int64("user_id", entry.UserID).
			Int64("modified_by", entry.ModifiedBy).
			Str("action", entry.Action).
			Msg("error saving audit log")
		return h.db.translate(ErrExecutingStatement, err)
	}
	return nil
}

func (h *historyRepository) ListAuditLogs(ctx context.Context, userID int64, limit uint64) ([]models.AuditLogEntry, error) {
	log := logger.FromContext(ctx)

	builder := h.db.builder.
		Select(auditLogColumns...).
		From("user_audit_logs").
		OrderBy("modified_at DESC", "id DESC").
		Limit(limit)
	if userID != 0 {
		builder = builder.Where(sq.Eq{"user_id": userID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.ListAuditLogs").Int64("user_id", userID).Msg("error listing audit logs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.AuditLogEntry, 0, min(limit, 64))
	for rows.Next() {
		var e models.AuditLogEntry
		if err = rows.Scan(
			&e.ID,
			&e.UserID,
			&e.UserEmail,
			&e.ModifiedBy,
			&e.ModifiedByEmail,
			&e.ModifiedAt,
			&e.Action,
			&e.Changes,
			&e.OldValues,
			&e.NewValues,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// SaveApplicationLog is called from the logging hook, so failures are
// returned but never logged here.
func (h *historyRepository) SaveApplicationLog(ctx context.Context, entry models.ApplicationLog) error {
	query, args, err := h.db.builder.
		Insert("application_logs").
		Columns(applicationLogColumns[1:]...).
		Values(utc(entry.Timestamp), entry.Level, entry.Message, entry.Exception, entry.LogEvent).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = h.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (h *historyRepository) ListApplicationLogs(ctx context.Context, limit uint64) ([]models.ApplicationLog, error) {
	query, args, err := h.db.builder.
		Select(applicationLogColumns...).
		From("application_logs").
		OrderBy("timestamp DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ApplicationLog, 0, min(limit, 64))
	for rows.Next() {
		var e models.ApplicationLog
		if err = rows.Scan(&e.ID, &e.Timestamp, &e.Level, &e.Message, &e.Exception, &e.LogEvent); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
