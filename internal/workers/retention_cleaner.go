// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/metrics"
	"github.com/MKhiriev/airline-guard/internal/service"
	"github.com/MKhiriev/airline-guard/models"
)

const RetentionCleanerName = "retention-cleaner"

// RetentionCleaner purges aged records once after a startup delay and then
// at a fixed interval. The EnableAutoCleanup switch is re-read on every run.
type RetentionCleaner struct {
	retention service.RetentionService
	delay     time.Duration
	interval  time.Duration
	metrics   *metrics.Metrics

	logger *logger.Logger
}

func NewRetentionCleaner(retention service.RetentionService, delay, interval time.Duration, m *metrics.Metrics, logger *logger.Logger) *RetentionCleaner {
	return &RetentionCleaner{
		retention: retention,
		delay:     delay,
		interval:  interval,
		metrics:   m,
		logger:    logger,
	}
}

func (r *RetentionCleaner) Name() string { return RetentionCleanerName }

func (r *RetentionCleaner) Run(ctx context.Context) {
	schedule(ctx, r.delay, r.interval, func(ctx context.Context) {
		r.Clean(ctx)
	})
}

func (r *RetentionCleaner) Clean(ctx context.Context) (models.RetentionResult, error) {
	result, err := r.retention.CleanupAll(ctx)
	r.metrics.WorkerRun(RetentionCleanerName, err)

	if err != nil {
		r.logger.Err(err).
			Str("worker", RetentionCleanerName).
			Int64("total_deleted", result.TotalDeleted).
			Msg("retention cleanup finished with errors")
		return result, err
	}
	if result.Skipped {
		r.logger.Debug().Str("worker", RetentionCleanerName).Msg("automatic cleanup disabled, run skipped")
		return result, nil
	}

	r.logger.Info().
		Str("worker", RetentionCleanerName).
		Int64("total_deleted", result.TotalDeleted).
		Dur("duration", result.Duration).
		Msg("retention cleanup finished")
	return result, nil
}
