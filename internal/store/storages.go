// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/airline-guard/internal/config"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/migrations"
)

// Storages groups every repository over one database connection.
type Storages struct {
	DB *DB

	ConfigRepository         ConfigRepository
	UserRepository           UserRepository
	SessionRepository        SessionRepository
	LoginHistoryRepository   LoginHistoryRepository
	AuditLogRepository       AuditLogRepository
	ApplicationLogRepository ApplicationLogRepository
	RetentionRepository      RetentionRepository
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case migrations.DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case migrations.DialectSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an already migrated
// connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	history := NewHistoryRepository(db, log)

	return &Storages{
		DB:                       db,
		ConfigRepository:         NewConfigRepository(db, log),
		UserRepository:           NewUserRepository(db, log),
		SessionRepository:        NewSessionRepository(db, log),
		LoginHistoryRepository:   history,
		AuditLogRepository:       history,
		ApplicationLogRepository: history,
		RetentionRepository:      NewRetentionRepository(db, log),
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
