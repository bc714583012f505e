// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults. Secrets and the DSN have no default.
const (
	DefaultHTTPAddress           = "localhost:8080"
	DefaultDBDriver              = DriverPostgres
	DefaultTokenIssuer           = "airline-guard"
	DefaultTokenDuration         = time.Hour
	DefaultTOTPIssuer            = "AirlineManager"
	DefaultRequestTimeout        = 30 * time.Second
	DefaultShutdownTimeout       = 10 * time.Second
	DefaultSessionSweepInterval  = 30 * time.Minute
	DefaultRetentionInterval     = 24 * time.Hour
	DefaultRetentionStartupDelay = time.Minute
	DefaultPolicyPollInterval    = 5 * time.Minute
	DefaultRedisChannel          = "airline-guard:config-changed"
	DefaultMaintenanceBypassRole = "SuperAdmin"
	DefaultAdminRole             = "Admin"
)

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DefaultRoleHierarchy is the role order from lowest to highest rank.
var DefaultRoleHierarchy = []string{"User", "Moderator", "Admin", "SuperAdmin"}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			TOTPIssuer:    DefaultTOTPIssuer,
		},
		Storage: Storage{
			DB:    DB{Driver: DefaultDBDriver},
			Redis: Redis{Channel: DefaultRedisChannel},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Workers: Workers{
			SessionSweepInterval:  DefaultSessionSweepInterval,
			RetentionInterval:     DefaultRetentionInterval,
			RetentionStartupDelay: DefaultRetentionStartupDelay,
			PolicyPollInterval:    DefaultPolicyPollInterval,
		},
		Security: Security{
			RoleHierarchy:         append([]string(nil), DefaultRoleHierarchy...),
			MaintenanceBypassRole: DefaultMaintenanceBypassRole,
			AdminRole:             DefaultAdminRole,
		},
	}
}
