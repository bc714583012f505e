// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// validate checks that the merged [StructuredConfig] satisfies all startup
// invariants.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token settings are incomplete", ErrInvalidAppConfigs)
	}
	if cfg.App.ConfigEncryptionKey == "" {
		return fmt.Errorf("%w: config encryption key is required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	w := cfg.Workers
	if w.SessionSweepInterval <= 0 || w.RetentionInterval <= 0 || w.PolicyPollInterval <= 0 || w.RetentionStartupDelay < 0 {
		return ErrInvalidWorkerConfigs
	}

	if len(cfg.Security.RoleHierarchy) == 0 {
		return fmt.Errorf("%w: empty role hierarchy", ErrInvalidSecurityConfigs)
	}
	seen := make([]string, 0, len(cfg.Security.RoleHierarchy))
	for _, role := range cfg.Security.RoleHierarchy {
		if role == "" || slices.Contains(seen, role) {
			return fmt.Errorf("%w: role hierarchy must list distinct non-empty roles", ErrInvalidSecurityConfigs)
		}
		seen = append(seen, role)
	}
	if cfg.Security.MaintenanceBypassRole != "" && !slices.Contains(seen, cfg.Security.MaintenanceBypassRole) {
		return fmt.Errorf("%w: maintenance bypass role %q is not in the hierarchy", ErrInvalidSecurityConfigs, cfg.Security.MaintenanceBypassRole)
	}
	if cfg.Security.AdminRole != "" && !slices.Contains(seen, cfg.Security.AdminRole) {
		return fmt.Errorf("%w: admin role %q is not in the hierarchy", ErrInvalidSecurityConfigs, cfg.Security.AdminRole)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Token == "" {
		return ErrMissingClientToken
	}
	return nil
}
