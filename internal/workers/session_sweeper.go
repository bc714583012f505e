// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/metrics"
	"github.com/MKhiriev/airline-guard/internal/service"
)

const SessionSweeperName = "session-sweeper"

// SessionSweeper deactivates expired sessions at a fixed interval, starting
// right away.
type SessionSweeper struct {
	sessions service.SessionService
	interval time.Duration
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewSessionSweeper(sessions service.SessionService, interval time.Duration, m *metrics.Metrics, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		metrics:  m,
		logger:   logger,
	}
}

func (s *SessionSweeper) Name() string { return SessionSweeperName }

func (s *SessionSweeper) Run(ctx context.Context) {
	schedule(ctx, 0, s.interval, func(ctx context.Context) {
		s.Sweep(ctx)
	})
}

// Sweep runs one pass and returns the number of sessions deactivated.
func (s *SessionSweeper) Sweep(ctx context.Context) (int64, error) {
	started := time.Now()

	swept, err := s.sessions.SweepExpired(ctx)
	s.metrics.WorkerRun(SessionSweeperName, err)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Str("worker", SessionSweeperName).Msg("session sweep failed")
		}
		return 0, err
	}

	active, err := s.sessions.CountActive(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("worker", SessionSweeperName).Msg("error counting active sessions")
	}
	s.metrics.SessionsSwept(swept, active)

	s.logger.Info().
		Str("worker", SessionSweeperName).
		Int64("swept", swept).
		Int64("active", active).
		Dur("duration", time.Since(started)).
		Msg("expired sessions swept")
	return swept, nil
}
