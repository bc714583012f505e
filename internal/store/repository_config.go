// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/models"
)

type configRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewConfigRepository constructs a [ConfigRepository] backed by db.
func NewConfigRepository(db *DB, logger *logger.Logger) ConfigRepository {
	return &configRepository{
		db:     db,
		logger: logger,
	}
}

func (c *configRepository) GetConfig(ctx context.Context, key string) (models.ConfigEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.db.builder.
		Select(configColumns...).
		From("app_configurations").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return models.ConfigEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.ConfigEntry
	err = c.db.QueryRowContext(ctx, query, args...).Scan(
		&entry.Key,
		&entry.Value,
		&entry.Category,
		&entry.Description,
		&entry.IsEncrypted,
		&entry.LastModified,
		&entry.LastModifiedBy,
	)
	if err != nil {
		err = c.db.translate(ErrScanningRow, err)
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*configRepository.GetConfig").Str("key", key).Msg("error reading configuration entry")
		}
		return models.ConfigEntry{}, err
	}

	return entry, nil
}

func (c *configRepository) ListConfig(ctx context.Context, category string) ([]models.ConfigEntry, error) {
	log := logger.FromContext(ctx)

	builder := c.db.builder.
		Select(configColumns...).
		From("app_configurations").
		OrderBy("key")
	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*configRepository.ListConfig").Str("category", category).Msg("error listing configuration")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ConfigEntry, 0, 8)
	for rows.Next() {
		var entry models.ConfigEntry
		if err = rows.Scan(
			&entry.Key,
			&entry.Value,
			&entry.Category,
			&entry.Description,
			&entry.IsEncrypted,
			&entry.LastModified,
			&entry.LastModifiedBy,
		); err != nil {
			log.Err(err).Str("func", "*configRepository.ListConfig").Msg("failed to scan configuration row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (c *configRepository) UpdateConfig(ctx context.Context, entry models.ConfigEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := c.db.builder.
		Update("app_configurations").
		Set("value", entry.Value).
		Set("last_modified", utc(entry.LastModified)).
		Set("last_modified_by", entry.LastModifiedBy).
		Where(sq.Eq{"key": entry.Key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*configRepository.UpdateConfig").Str("key", entry.Key).Msg("error updating configuration entry")
		return c.db.translate(ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}
