// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/store"
	"github.com/MKhiriev/airline-guard/models"
)

const maxSessionIDLength = 128

// sessionService keeps server-side liveness records. Concurrent refreshes
// of one session are last-writer-wins; the rows are advisory and never the
// only source of authorization.
type sessionService struct {
	sessions store.SessionRepository
	users    store.UserRepository
	now      func() time.Time

	logger *logger.Logger
}

func NewSessionService(sessions store.SessionRepository, users store.UserRepository, logger *logger.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		users:    users,
		now:      time.Now,
		logger:   logger,
	}
}

// CreateOrRefresh inserts a session or reactivates the row with the same id.
// The creation time of an existing row is kept.
func (s *sessionService) CreateOrRefresh(ctx context.Context, userID int64, sessionID, clientIP, userAgent string, persistent bool) (models.Session, error) {
	log := logger.FromContext(ctx)

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" || len(sessionID) > maxSessionIDLength {
		return models.Session{}, ErrInvalidInput
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return models.Session{}, mapStoreError(err)
	}

	now := s.now().UTC()
	expiresAt := now.Add(models.SessionTTL(persistent))

	session, err := s.sessions.UpsertSession(ctx, models.Session{
		SessionID:    sessionID,
		UserID:       userID,
		UserEmail:    user.Email,
		CreatedAt:    now,
		LastActivity: now,
		ExpiresAt:    &expiresAt,
		IsActive:     true,
		IsPersistent: persistent,
		ClientInfo:   parseClientInfo(clientIP, userAgent),
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionService.CreateOrRefresh").Int64("user_id", userID).Msg("error storing session")
		return models.Session{}, mapStoreError(err)
	}

	return session, nil
}

func (s *sessionService) Touch(ctx context.Context, sessionID string) (bool, error) {
	touched, err := s.sessions.TouchSession(ctx, sessionID, s.now().UTC())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.Touch").Msg("error touching session")
		return false, mapStoreError(err)
	}
	return touched, nil
}

func (s *sessionService) Get(ctx context.Context, sessionID string) (models.Session, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return models.Session{}, mapStoreError(err)
	}
	return session, nil
}

func (s *sessionService) ListActive(ctx context.Context, userID int64) ([]models.Session, error) {
	sessions, err := s.sessions.ListActiveSessions(ctx, userID, s.now().UTC())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.ListActive").Int64("user_id", userID).Msg("error listing sessions")
		return nil, mapStoreError(err)
	}
	return sessions, nil
}

// Revoke is idempotent: revoking an inactive or unknown session succeeds.
func (s *sessionService) Revoke(ctx context.Context, sessionID string) error {
	if _, err := s.sessions.DeactivateSession(ctx, sessionID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.Revoke").Msg("error revoking session")
		return mapStoreError(err)
	}
	return nil
}

// RevokeOwned answers ErrNotFound for sessions of other users so that ids
// cannot be probed.
func (s *sessionService) RevokeOwned(ctx context.Context, userID int64, sessionID string) error {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return mapStoreError(err)
	}
	if session.UserID != userID {
		return ErrNotFound
	}
	return s.Revoke(ctx, sessionID)
}

func (s *sessionService) RevokeAllExcept(ctx context.Context, userID int64, keepSessionID string) (int64, error) {
	n, err := s.sessions.DeactivateUserSessions(ctx, userID, keepSessionID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.RevokeAllExcept").Int64("user_id", userID).Msg("error revoking sessions")
		return 0, mapStoreError(err)
	}
	return n, nil
}

func (s *sessionService) RevokeAll(ctx context.Context, userID int64) (int64, error) {
	return s.RevokeAllExcept(ctx, userID, "")
}

// SweepExpired is meant for the background sweeper only.
func (s *sessionService) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.sessions.DeactivateExpired(ctx, s.now().UTC())
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.FromContext(ctx).Err(err).Str("func", "*sessionService.SweepExpired").Msg("error deactivating expired sessions")
		}
		return 0, mapStoreError(err)
	}
	return n, nil
}

func (s *sessionService) CountActive(ctx context.Context) (int64, error) {
	n, err := s.sessions.CountActiveSessions(ctx, s.now().UTC())
	if err != nil {
		return 0, mapStoreError(err)
	}
	return n, nil
}
