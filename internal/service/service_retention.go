// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/metrics"
	"github.com/MKhiriev/airline-guard/internal/store"
	"github.com/MKhiriev/airline-guard/models"
)

// RetentionBatchSize bounds a single delete statement for the batched
// categories.
const RetentionBatchSize = 1000

// batchedCategories are deleted in RetentionBatchSize chunks, the rest in one
// statement.
var batchedCategories = map[models.RetentionCategory]bool{
	models.RetentionLoginHistory: true,
	models.RetentionAuditLogs:    true,
}

type retentionService struct {
	config  ConfigService
	repo    store.RetentionRepository
	metrics *metrics.Metrics
	now     func() time.Time

	logger *logger.Logger
}

func NewRetentionService(config ConfigService, repo store.RetentionRepository, metrics *metrics.Metrics, logger *logger.Logger) RetentionService {
	return &retentionService{
		config:  config,
		repo:    repo,
		metrics: metrics,
		now:     time.Now,
		logger:  logger,
	}
}

func (r *retentionService) ResolveConfig(ctx context.Context) models.RetentionConfig {
	cfg := models.DefaultRetentionConfig()

	cfg.ApplicationLogsDays = nonNegativeIntOr(ctx, r.config, models.KeyRetentionApplicationLogsDays, cfg.ApplicationLogsDays)
	cfg.LoginHistoryDays = nonNegativeIntOr(ctx, r.config, models.KeyRetentionLoginHistoryDays, cfg.LoginHistoryDays)
	cfg.AuditLogsDays = nonNegativeIntOr(ctx, r.config, models.KeyRetentionAuditLogsDays, cfg.AuditLogsDays)
	cfg.InactiveSessionsDays = nonNegativeIntOr(ctx, r.config, models.KeyRetentionInactiveSessionsDays, cfg.InactiveSessionsDays)
	cfg.EnableAutoCleanup = boolOr(ctx, r.config, models.KeyRetentionEnableAutoCleanup, cfg.EnableAutoCleanup)

	return cfg
}

// Cleanup purges one category regardless of the auto-cleanup flag. A window
// of zero days keeps everything.
func (r *retentionService) Cleanup(ctx context.Context, category models.RetentionCategory) (int64, error) {
	if _, err := models.ParseRetentionCategory(string(category)); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return r.cleanup(ctx, r.ResolveConfig(ctx), category)
}

// CleanupAll runs every category in order. A failing category does not stop
// the others; the failures are returned joined.
func (r *retentionService) CleanupAll(ctx context.Context) (models.RetentionResult, error) {
	log := logger.FromContext(ctx)

	started := r.now()
	result := models.RetentionResult{
		Deleted:    make(map[models.RetentionCategory]int64, len(models.RetentionCategories)),
		ExecutedAt: started.UTC(),
	}

	cfg := r.ResolveConfig(ctx)
	if !cfg.EnableAutoCleanup {
		result.Skipped = true
		log.Info().Msg("automatic data retention cleanup is disabled")
		return result, nil
	}

	var errs []error
	for _, category := range models.RetentionCategories {
		n, err := r.cleanup(ctx, cfg, category)
		result.Deleted[category] = n
		result.TotalDeleted += n
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", category, err))
			if ctx.Err() != nil {
				break
			}
		}
	}

	result.Duration = r.now().Sub(started)
	r.metrics.RetentionRun(result.Duration)

	log.Info().
		Int64("total_deleted", result.TotalDeleted).
		Dur("duration", result.Duration).
		Msg("data retention cleanup finished")

	return result, errors.Join(errs...)
}

func (r *retentionService) Statistics(ctx context.Context) (models.RetentionStatistics, error) {
	cfg := r.ResolveConfig(ctx)
	now := r.now().UTC()

	stats := models.RetentionStatistics{
		Config:      cfg,
		Categories:  make(map[models.RetentionCategory]models.CategoryStatistics, len(models.RetentionCategories)),
		GeneratedAt: now,
	}

	for _, category := range models.RetentionCategories {
		var cutoff *time.Time
		if days := cfg.Days(category); days > 0 {
			c := now.Add(-time.Duration(days) * day)
			cutoff = &c
		}

		categoryStats, err := r.repo.Statistics(ctx, category, cutoff)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*retentionService.Statistics").Str("category", string(category)).Msg("error collecting retention statistics")
			return models.RetentionStatistics{}, mapStoreError(err)
		}
		stats.Categories[category] = categoryStats
	}

	return stats, nil
}

func (r *retentionService) cleanup(ctx context.Context, cfg models.RetentionConfig, category models.RetentionCategory) (int64, error) {
	log := logger.FromContext(ctx)

	days := cfg.Days(category)
	if days == 0 {
		return 0, nil
	}
	cutoff := r.now().UTC().Add(-time.Duration(days) * day)

	var (
		deleted int64
		err     error
	)
	if batchedCategories[category] {
		deleted, err = r.deleteInBatches(ctx, category, cutoff)
	} else {
		deleted, err = r.repo.DeleteOlderThan(ctx, category, cutoff)
	}

	r.metrics.RetentionDeleted(string(category), deleted)
	if err != nil {
		log.Err(err).Str("func", "*retentionService.cleanup").Str("category", string(category)).Int64("deleted", deleted).Msg("retention cleanup failed")
		return deleted, mapStoreError(err)
	}

	if deleted > 0 {
		log.Info().Str("category", string(category)).Int64("deleted", deleted).Time("cutoff", cutoff).Msg("aged records deleted")
	}
	return deleted, nil
}

// deleteInBatches stops at the first empty batch and checks ctx between
// batches.
func (r *retentionService) deleteInBatches(ctx context.Context, category models.RetentionCategory, cutoff time.Time) (int64, error) {
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		n, err := r.repo.DeleteBatch(ctx, category, cutoff, RetentionBatchSize)
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, nil
		}
		total += n
	}
}

