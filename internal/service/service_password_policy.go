// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/internal/validators"
	"github.com/MKhiriev/airline-guard/models"
)

type passwordPolicyService struct {
	config    ConfigService
	validator *validators.PasswordValidator

	logger *logger.Logger
}

func NewPasswordPolicyService(config ConfigService, validator *validators.PasswordValidator, logger *logger.Logger) PasswordPolicyService {
	return &passwordPolicyService{
		config:    config,
		validator: validator,
		logger:    logger,
	}
}

// Resolve reads the six password keys. Each missing or unparsable key falls
// back to its own default independently of the others.
func (p *passwordPolicyService) Resolve(ctx context.Context) models.PasswordPolicy {
	policy := models.DefaultPasswordPolicy()

	policy.RequireDigit = boolOr(ctx, p.config, models.KeyPasswordRequireDigit, policy.RequireDigit)
	policy.RequireLowercase = boolOr(ctx, p.config, models.KeyPasswordRequireLowercase, policy.RequireLowercase)
	policy.RequireUppercase = boolOr(ctx, p.config, models.KeyPasswordRequireUppercase, policy.RequireUppercase)
	policy.RequireNonAlphanumeric = boolOr(ctx, p.config, models.KeyPasswordRequireNonAlphanum, policy.RequireNonAlphanumeric)
	policy.RequiredLength = nonNegativeIntOr(ctx, p.config, models.KeyPasswordRequiredLength, policy.RequiredLength)
	policy.RequiredUniqueChars = nonNegativeIntOr(ctx, p.config, models.KeyPasswordRequiredUniqueChars, policy.RequiredUniqueChars)

	return policy
}

func (p *passwordPolicyService) Describe(ctx context.Context) []string {
	return validators.Requirements(p.Resolve(ctx))
}

func (p *passwordPolicyService) Apply(ctx context.Context) models.PasswordPolicy {
	policy := p.Resolve(ctx)
	p.validator.SetPolicy(policy)

	logger.FromContext(ctx).Debug().
		Int("required_length", policy.RequiredLength).
		Int("required_unique_chars", policy.RequiredUniqueChars).
		Msg("password policy applied")
	return policy
}

func boolOr(ctx context.Context, config ConfigService, key string, fallback bool) bool {
	if value, ok := config.GetBool(ctx, key); ok {
		return value
	}
	return fallback
}

func intOr(ctx context.Context, config ConfigService, key string, fallback int) int {
	if value, ok := config.GetInt(ctx, key); ok {
		return value
	}
	return fallback
}

// nonNegativeIntOr treats negative values as unparsable. Zero is kept.
func nonNegativeIntOr(ctx context.Context, config ConfigService, key string, fallback int) int {
	if value := intOr(ctx, config, key, fallback); value >= 0 {
		return value
	}
	return fallback
}
