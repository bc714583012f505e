// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrWeakPassword      = errors.New("password does not meet requirements")
	ErrEmptyPassword     = errors.New("password is required")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrDisplayNameLength = errors.New("display name is too long")
	ErrInvalidTheme      = errors.New("invalid theme")
	ErrEmptyCode         = errors.New("code is required")
	ErrEmptyToken        = errors.New("token is required")
	ErrEmptyRoles        = errors.New("at least one role is required")
	ErrDuplicateRole     = errors.New("role is listed more than once")
	ErrEmptyConfigValues = errors.New("at least one configuration value is required")
)
