// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid admin client transport
	// settings (for example, missing address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrMissingClientToken indicates that the admin client has no bearer
	// token to authenticate with.
	ErrMissingClientToken = errors.New("missing client token")

	// ErrInvalidStorageConfigs indicates an empty DSN or an unsupported
	// database driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs indicates missing token or encryption settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidServerConfigs indicates an unusable listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidWorkerConfigs indicates non-positive job intervals.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")

	// ErrInvalidSecurityConfigs indicates a malformed role hierarchy.
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
)
