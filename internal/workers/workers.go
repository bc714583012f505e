// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/metrics"
	"github.com/MKhiriev/airline-guard/internal/notify"
	"github.com/MKhiriev/airline-guard/internal/service"
)

// Workers starts a set of workers together and waits for all of them to
// stop.
type Workers struct {
	workers []Worker
	wg      sync.WaitGroup

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{
		workers: workers,
		logger:  logger,
	}
}

// NewBackgroundWorkers builds the server's standard set of workers.
func NewBackgroundWorkers(services *service.Services, subscriber notify.Subscriber, cfg config.Workers, m *metrics.Metrics, logger *logger.Logger) *Workers {
	return NewWorkers(logger,
		NewSessionSweeper(services.SessionService, cfg.SessionSweepInterval, m, logger),
		NewRetentionCleaner(services.RetentionService, cfg.RetentionStartupDelay, cfg.RetentionInterval, m, logger),
		NewPolicyRefresher(services.PasswordPolicyService, services.LockoutService, subscriber, cfg.PolicyPollInterval, m, logger),
	)
}

// Run starts every worker in its own goroutine and returns immediately.
// Each worker's context carries a child logger tagged with the worker name,
// so services it calls log through logger.FromContext like request handlers.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					w.logger.Error().Str("worker", worker.Name()).Any("panic", r).Msg("worker stopped after a panic")
				}
			}()

			l := w.logger.With().Str("worker", worker.Name()).Logger()

			w.logger.Info().Str("worker", worker.Name()).Msg("worker started")
			worker.Run(l.WithContext(ctx))
			w.logger.Info().Str("worker", worker.Name()).Msg("worker stopped")
		}(worker)
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}

// schedule calls fn after delay and then every interval until ctx is done.
// The next interval starts when fn returns.
func schedule(ctx context.Context, delay, interval time.Duration, fn func(context.Context)) {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			fn(ctx)
			timer.Reset(interval)
		}
	}
}
