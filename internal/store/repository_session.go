// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/models"
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func scanSession(row rowScanner) (models.Session, error) {
	var s models.Session
	err := row.Scan(
		&s.ID,
		&s.SessionID,
		&s.UserID,
		&s.UserEmail,
		&s.CreatedAt,
		&s.LastActivity,
		&s.ExpiresAt,
		&s.IsActive,
		&s.IsPersistent,
		&s.IPAddress,
		&s.UserAgent,
		&s.Browser,
		&s.OS,
		&s.Device,
	)
	return s, err
}

// UpsertSession inserts session or refreshes the row with the same session
// id. On refresh only activity, expiry, persistence and the active flag
// change; creation time and client metadata are kept.
func (s *sessionRepository) UpsertSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder.
		Insert("user_sessions").
		Columns(sessionColumns[1:]...).
		Values(
			session.SessionID,
			session.UserID,
			session.UserEmail,
			utc(session.CreatedAt),
			utc(session.LastActivity),
			utcPtr(session.ExpiresAt),
			session.IsActive,
			session.IsPersistent,
			session.IPAddress,
			session.UserAgent,
			session.Browser,
			session.OS,
			session.Device,
		).
		Suffix(sessionUpsertSuffix).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stored, err := scanSession(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = s.db.translate(ErrExecutingStatement, err)
		// no row back means the conflicting row belongs to someone else
		if errors.Is(err, ErrNotFound) {
			log.Warn().Str("func", "*sessionRepository.UpsertSession").Int64("user_id", session.UserID).Msg("session id is owned by another user")
			return models.Session{}, ErrConflict
		}
		log.Err(err).Str("func", "*sessionRepository.UpsertSession").Int64("user_id", session.UserID).Msg("error upserting session")
		return models.Session{}, err
	}

	return stored, nil
}

func (s *sessionRepository) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	query, args, err := s.db.builder.
		Select(sessionColumns...).
		From("user_sessions").
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	session, err := scanSession(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = s.db.translate(ErrScanningRow, err)
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.GetSession").Msg("error reading session")
		}
		return models.Session{}, err
	}

	return session, nil
}

// TouchSession moves last activity to now and recomputes the expiry from the
// row's own persistence flag.
func (s *sessionRepository) TouchSession(ctx context.Context, sessionID string, now time.Time) (bool, error) {
	now = utc(now)

	query, args, err := s.db.builder.
		Update("user_sessions").
		Set("last_activity_at", now).
		Set("expires_at", sq.Expr("CASE WHEN is_persistent THEN ? ELSE ? END",
			now.Add(models.PersistentSessionTTL), now.Add(models.TransientSessionTTL))).
		Where(sq.Eq{"session_id": sessionID, "is_active": true}).
		Where(sq.Or{sq.Eq{"expires_at": nil}, sq.Gt{"expires_at": now}}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.db.execWithRetry(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.TouchSession").Msg("error touching session")
		return false, s.db.translate(ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// ListActiveSessions returns the unexpired active sessions of a user, most
// recently used first.
func (s *sessionRepository) ListActiveSessions(ctx context.Context, userID int64, now time.Time) ([]models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder.
		Select(sessionColumns...).
		From("user_sessions").
		Where(sq.Eq{"user_id": userID, "is_active": true}).
		Where(sq.Or{sq.Eq{"expires_at": nil}, sq.Gt{"expires_at": utc(now)}}).
		OrderBy("last_activity_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.ListActiveSessions").Int64("user_id", userID).Msg("error listing sessions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sessions := make([]models.Session, 0, 4)
	for rows.Next() {
		session, scanErr := scanSession(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*sessionRepository.ListActiveSessions").Msg("failed to scan session row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		sessions = append(sessions, session)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sessions, nil
}

func (s *sessionRepository) DeactivateSession(ctx context.Context, sessionID string) (int64, error) {
	return s.deactivate(ctx, "*sessionRepository.DeactivateSession", sq.Eq{"session_id": sessionID, "is_active": true})
}

// DeactivateUserSessions soft-deletes every active session of userID except
// exceptSessionID (empty keeps none).
func (s *sessionRepository) DeactivateUserSessions(ctx context.Context, userID int64, exceptSessionID string) (int64, error) {
	pred := sq.And{sq.Eq{"user_id": userID, "is_active": true}}
	if exceptSessionID != "" {
		pred = append(pred, sq.NotEq{"session_id": exceptSessionID})
	}
	return s.deactivate(ctx, "*sessionRepository.DeactivateUserSessions", pred)
}

// DeactivateExpired soft-deletes active sessions whose expiry has passed.
func (s *sessionRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	return s.deactivate(ctx, "*sessionRepository.DeactivateExpired", sq.And{
		sq.Eq{"is_active": true},
		sq.Lt{"expires_at": utc(now)},
	})
}

func (s *sessionRepository) deactivate(ctx context.Context, fn string, pred sq.Sqlizer) (int64, error) {
	query, args, err := s.db.builder.
		Update("user_sessions").
		Set("is_active", false).
		Where(pred).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.db.execWithRetry(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error deactivating sessions")
		return 0, s.db.translate(ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	return affected, nil
}

func (s *sessionRepository) CountActiveSessions(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := s.db.builder.
		Select("COUNT(*)").
		From("user_sessions").
		Where(sq.Eq{"is_active": true}).
		Where(sq.Or{sq.Eq{"expires_at": nil}, sq.Gt{"expires_at": utc(now)}}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.CountActiveSessions").Msg("error counting sessions")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return count, nil
}
