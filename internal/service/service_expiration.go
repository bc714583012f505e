// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/store"
	"github.com/MKhiriev/airline-guard/models"
)

const day = 24 * time.Hour

type passwordExpirationService struct {
	config ConfigService
	users  store.UserRepository
	now    func() time.Time

	logger *logger.Logger
}

func NewPasswordExpirationService(config ConfigService, users store.UserRepository, logger *logger.Logger) PasswordExpirationService {
	return &passwordExpirationService{
		config: config,
		users:  users,
		now:    time.Now,
		logger: logger,
	}
}

// IsExpired treats a missing change timestamp as expired: such accounts were
// provisioned or migrated and must set their own password first.
func (e *passwordExpirationService) IsExpired(ctx context.Context, user models.User) bool {
	days := e.expirationDays(ctx)
	if days == 0 {
		return false
	}
	if user.PasswordChangedAt == nil {
		return true
	}
	return e.daysSince(*user.PasswordChangedAt) >= days
}

func (e *passwordExpirationService) DaysUntilExpiration(ctx context.Context, user models.User) *int {
	days := e.expirationDays(ctx)
	if days == 0 {
		return nil
	}

	remaining := 0
	if user.PasswordChangedAt != nil {
		remaining = days - e.daysSince(*user.PasswordChangedAt)
	}
	return &remaining
}

func (e *passwordExpirationService) MarkChanged(ctx context.Context, userID int64) error {
	if err := e.users.SetPasswordChangedAt(ctx, userID, e.now().UTC()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*passwordExpirationService.MarkChanged").Int64("user_id", userID).Msg("error stamping password change")
		return mapStoreError(err)
	}
	return nil
}

func (e *passwordExpirationService) expirationDays(ctx context.Context) int {
	days := intOr(ctx, e.config, models.KeyPasswordExpirationDays, models.DefaultPasswordExpirationDays)
	if days < 0 {
		return models.DefaultPasswordExpirationDays
	}
	return days
}

// daysSince counts whole elapsed days.
func (e *passwordExpirationService) daysSince(t time.Time) int {
	return int(e.now().Sub(t) / day)
}
