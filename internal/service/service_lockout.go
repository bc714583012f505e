// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/store"
	"github.com/MKhiriev/airline-guard/internal/validators"
	"github.com/MKhiriev/airline-guard/models"
)

type lockoutService struct {
	config  ConfigService
	users   store.UserRepository
	options *validators.LockoutOptions
	now     func() time.Time

	logger *logger.Logger
}

func NewLockoutService(config ConfigService, users store.UserRepository, options *validators.LockoutOptions, logger *logger.Logger) LockoutService {
	return &lockoutService{
		config:  config,
		users:   users,
		options: options,
		now:     time.Now,
		logger:  logger,
	}
}

// Resolve reads the lockout keys. A zero attempt count is a valid value that
// disables lockout; negative values are treated as unparsable.
func (l *lockoutService) Resolve(ctx context.Context) models.LockoutPolicy {
	policy := models.DefaultLockoutPolicy()

	policy.MaxFailedAttempts = nonNegativeIntOr(ctx, l.config, models.KeyMaxFailedLoginAttempts, policy.MaxFailedAttempts)
	policy.LockoutMinutes = nonNegativeIntOr(ctx, l.config, models.KeyLockoutDurationMinutes, policy.LockoutMinutes)

	return policy
}

func (l *lockoutService) IsEnabled(ctx context.Context) bool {
	return l.Resolve(ctx).Enabled()
}

func (l *lockoutService) Apply(ctx context.Context) models.LockoutPolicy {
	policy := l.Resolve(ctx)
	l.options.SetPolicy(policy)

	logger.FromContext(ctx).Debug().
		Int("max_failed_attempts", policy.MaxFailedAttempts).
		Int("lockout_minutes", policy.LockoutMinutes).
		Msg("lockout policy applied")
	return policy
}

func (l *lockoutService) RegisterFailure(ctx context.Context, user models.User) (bool, error) {
	log := logger.FromContext(ctx)

	policy := l.Resolve(ctx)
	if !policy.Enabled() || !user.LockoutEnabled {
		return false, nil
	}

	count, err := l.users.IncrementFailedAccess(ctx, user.UserID)
	if err != nil {
		log.Err(err).Str("func", "*lockoutService.RegisterFailure").Int64("user_id", user.UserID).Msg("error counting failed access")
		return false, mapStoreError(err)
	}
	if count < policy.MaxFailedAttempts {
		return false, nil
	}

	end := l.now().UTC().Add(policy.Duration())
	if err = l.users.SetLockoutEnd(ctx, user.UserID, &end); err != nil {
		log.Err(err).Str("func", "*lockoutService.RegisterFailure").Int64("user_id", user.UserID).Msg("error locking account")
		return false, mapStoreError(err)
	}

	log.Warn().Int64("user_id", user.UserID).Time("lockout_end", end).Msg("account locked after repeated failures")
	return true, nil
}
