// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/airline-guard/models"
)

// PasswordError lists every rule a password failed. It unwraps to
// [ErrWeakPassword].
type PasswordError struct {
	Violations []string
}

func (e *PasswordError) Error() string {
	return ErrWeakPassword.Error() + ": " + strings.Join(e.Violations, "; ")
}

func (e *PasswordError) Unwrap() error {
	return ErrWeakPassword
}

// PasswordValidator checks passwords against the live policy. The policy is
// replaced atomically by the policy refresher and read on every validation.
type PasswordValidator struct {
	policy atomic.Pointer[models.PasswordPolicy]
}

// NewPasswordValidator starts with the built-in default policy.
func NewPasswordValidator() *PasswordValidator {
	v := &PasswordValidator{}
	v.SetPolicy(models.DefaultPasswordPolicy())
	return v
}

func (v *PasswordValidator) SetPolicy(policy models.PasswordPolicy) {
	v.policy.Store(&policy)
}

func (v *PasswordValidator) Policy() models.PasswordPolicy {
	return *v.policy.Load()
}

// Validate accepts a plain string or any request type carrying a new
// password.
func (v *PasswordValidator) Validate(_ context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case string:
		return v.check(value)
	case models.ChangePasswordRequest:
		return v.check(value.NewPassword)
	case *models.ChangePasswordRequest:
		return v.check(value.NewPassword)
	case models.ResetPasswordRequest:
		return v.check(value.NewPassword)
	case *models.ResetPasswordRequest:
		return v.check(value.NewPassword)
	case models.AdminResetPasswordRequest:
		return v.check(value.NewPassword)
	case *models.AdminResetPasswordRequest:
		return v.check(value.NewPassword)
	case models.CreateUserRequest:
		return v.check(value.Password)
	case *models.CreateUserRequest:
		return v.check(value.Password)
	default:
		return ErrUnsupportedType
	}
}

func (v *PasswordValidator) check(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	violations := Violations(v.Policy(), password)
	if len(violations) > 0 {
		return &PasswordError{Violations: violations}
	}
	return nil
}

// Requirements describes policy as sentences in a fixed order: length,
// lowercase, uppercase, digit, symbol, unique characters. The length sentence
// is always present.
func Requirements(policy models.PasswordPolicy) []string {
	reqs := make([]string, 0, 6)
	reqs = append(reqs, lengthRule(policy.RequiredLength))
	if policy.RequireLowercase {
		reqs = append(reqs, ruleLowercase)
	}
	if policy.RequireUppercase {
		reqs = append(reqs, ruleUppercase)
	}
	if policy.RequireDigit {
		reqs = append(reqs, ruleDigit)
	}
	if policy.RequireNonAlphanumeric {
		reqs = append(reqs, ruleSymbol)
	}
	if policy.RequiredUniqueChars > 1 {
		reqs = append(reqs, uniqueRule(policy.RequiredUniqueChars))
	}
	return reqs
}

// Violations returns the requirement sentences password fails, in the order
// of [Requirements].
func Violations(policy models.PasswordPolicy, password string) []string {
	var (
		hasLower, hasUpper, hasDigit, hasSymbol bool
		unique                                  = make(map[rune]struct{}, len(password))
		length                                  int
	)
	for _, r := range password {
		length++
		unique[r] = struct{}{}
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	var out []string
	if length < policy.RequiredLength {
		out = append(out, lengthRule(policy.RequiredLength))
	}
	if policy.RequireLowercase && !hasLower {
		out = append(out, ruleLowercase)
	}
	if policy.RequireUppercase && !hasUpper {
		out = append(out, ruleUppercase)
	}
	if policy.RequireDigit && !hasDigit {
		out = append(out, ruleDigit)
	}
	if policy.RequireNonAlphanumeric && !hasSymbol {
		out = append(out, ruleSymbol)
	}
	if policy.RequiredUniqueChars > 1 && len(unique) < policy.RequiredUniqueChars {
		out = append(out, uniqueRule(policy.RequiredUniqueChars))
	}
	return out
}

const (
	ruleLowercase = "Contains at least one lowercase letter (a-z)"
	ruleUppercase = "Contains at least one uppercase letter (A-Z)"
	ruleDigit     = "Contains at least one number (0-9)"
	ruleSymbol    = "Contains at least one special character (!@#$%^&* etc.)"
)

func lengthRule(n int) string {
	return fmt.Sprintf("At least %d characters long", n)
}

func uniqueRule(n int) string {
	return fmt.Sprintf("Contains at least %d unique characters", n)
}
