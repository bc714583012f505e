// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/models"
)

type retentionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRetentionRepository constructs a [RetentionRepository] backed by db.
func NewRetentionRepository(db *DB, logger *logger.Logger) RetentionRepository {
	return &retentionRepository{
		db:     db,
		logger: logger,
	}
}

// agedPredicate selects the rows of target older than cutoff.
func agedPredicate(target retentionTarget, cutoff time.Time) sq.And {
	pred := sq.And{sq.Lt{target.timeColumn: utc(cutoff)}}
	if target.inactiveOnly {
		pred = append(pred, sq.Eq{"is_active": false})
	}
	return pred
}

// DeleteBatch removes up to limit aged rows picked by ascending id.
// PostgreSQL has no DELETE ... LIMIT, hence the subquery.
func (r *retentionRepository) DeleteBatch(ctx context.Context, category models.RetentionCategory, cutoff time.Time, limit uint64) (int64, error) {
	target, err := lookupRetentionTarget(category)
	if err != nil {
		return 0, err
	}

	ids := r.db.builder.
		Select("id").
		From(target.table).
		Where(agedPredicate(target, cutoff)).
		OrderBy("id").
		Limit(limit)

	query, args, err := r.db.builder.
		Delete(target.table).
		Where(sq.Expr("id IN (?)", ids)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*retentionRepository.DeleteBatch", category, query, args)
}

func (r *retentionRepository) DeleteOlderThan(ctx context.Context, category models.RetentionCategory, cutoff time.Time) (int64, error) {
	target, err := lookupRetentionTarget(category)
	if err != nil {
		return 0, err
	}

	query, args, err := r.db.builder.
		Delete(target.table).
		Where(agedPredicate(target, cutoff)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*retentionRepository.DeleteOlderThan", category, query, args)
}

func (r *retentionRepository) exec(ctx context.Context, fn string, category models.RetentionCategory, query string, args []any) (int64, error) {
	result, err := r.db.execWithRetry(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Str("category", string(category)).Msg("error deleting aged rows")
		return 0, r.db.translate(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected, nil
}

// Statistics computes total, oldest and eligible counts in one query. For
// inactive sessions all three figures cover soft-deleted rows only.
func (r *retentionRepository) Statistics(ctx context.Context, category models.RetentionCategory, cutoff *time.Time) (models.CategoryStatistics, error) {
	target, err := lookupRetentionTarget(category)
	if err != nil {
		return models.CategoryStatistics{}, err
	}

	eligible := sq.Expr("0")
	if cutoff != nil {
		eligible = sq.Expr(
			fmt.Sprintf("COALESCE(SUM(CASE WHEN %s < ? THEN 1 ELSE 0 END), 0)", target.timeColumn),
			utc(*cutoff),
		)
	}

	builder := r.db.builder.
		Select("COUNT(*)", fmt.Sprintf("MIN(%s)", target.timeColumn)).
		Column(eligible).
		From(target.table)
	if target.inactiveOnly {
		builder = builder.Where(sq.Eq{"is_active": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.CategoryStatistics{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		stats  models.CategoryStatistics
		oldest oldestTime
	)
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&stats.Total, &oldest, &stats.Eligible); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*retentionRepository.Statistics").Str("category", string(category)).Msg("error reading retention statistics")
		return models.CategoryStatistics{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if oldest.Valid {
		t := oldest.Time.UTC()
		stats.Oldest = &t
	}
	return stats, nil
}

// oldestTime scans MIN() over a timestamp column. PostgreSQL returns a
// time.Time; SQLite loses the declared type in aggregates and returns text.
type oldestTime struct {
	sql.NullTime
}

func (o *oldestTime) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return o.parse(v)
	case []byte:
		return o.parse(string(v))
	}
	return o.NullTime.Scan(src)
}

func (o *oldestTime) parse(s string) error {
	for _, layout := range sqliteTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			o.Time, o.Valid = t, true
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}

var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
}
