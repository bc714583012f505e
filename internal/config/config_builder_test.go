// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Storage.DB.DSN = "postgres://localhost/airline"
	cfg.App.TokenSignKey = "sign"
	cfg.App.ConfigEncryptionKey = "passphrase"
	return cfg
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9999"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultSessionSweepInterval, cfg.Workers.SessionSweepInterval)
	assert.Equal(t, DefaultRoleHierarchy, cfg.Security.RoleHierarchy)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_MergesFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "file:airline.db", "driver": "sqlite3"}},
		"workers": map[string]any{"retention_interval": "12h"},
	})

	b := newConfigBuilder().withDefaults()
	base := validConfig()
	base.JSONFilePath = path
	b.configs = append(b.configs, base)

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "file:airline.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, 12*time.Hour, cfg.Workers.RetentionInterval)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "unsupported driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing encryption key", mutate: func(cfg *StructuredConfig) { cfg.App.ConfigEncryptionKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero sweep interval", mutate: func(cfg *StructuredConfig) { cfg.Workers.SessionSweepInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "duplicate role", mutate: func(cfg *StructuredConfig) { cfg.Security.RoleHierarchy = []string{"User", "User"} }, wantErr: ErrInvalidSecurityConfigs},
		{name: "bypass role outside hierarchy", mutate: func(cfg *StructuredConfig) { cfg.Security.MaintenanceBypassRole = "Root" }, wantErr: ErrInvalidSecurityConfigs},
		{name: "admin role outside hierarchy", mutate: func(cfg *StructuredConfig) { cfg.Security.AdminRole = "Root" }, wantErr: ErrInvalidSecurityConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
