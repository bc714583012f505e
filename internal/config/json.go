// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations written as strings such as "30m".
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey        string   `json:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer"`
		TokenDuration       Duration `json:"token_duration"`
		ConfigEncryptionKey string   `json:"config_encryption_key"`
		TOTPIssuer          string   `json:"totp_issuer"`
		PublicURL           string   `json:"public_url"`
		Version             string   `json:"version"`
	} `json:"app,omitempty"`
	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
			Channel  string `json:"channel"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`
	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`
	Workers struct {
		SessionSweepInterval  Duration `json:"session_sweep_interval"`
		RetentionInterval     Duration `json:"retention_interval"`
		RetentionStartupDelay Duration `json:"retention_startup_delay"`
		PolicyPollInterval    Duration `json:"policy_poll_interval"`
	} `json:"workers,omitempty"`
	Security struct {
		RoleHierarchy         []string `json:"role_hierarchy"`
		MaintenanceBypassRole string   `json:"maintenance_bypass_role"`
		AdminRole             string   `json:"admin_role"`
	} `json:"security,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:        jsonCfg.App.TokenSignKey,
			TokenIssuer:         jsonCfg.App.TokenIssuer,
			TokenDuration:       time.Duration(jsonCfg.App.TokenDuration),
			ConfigEncryptionKey: jsonCfg.App.ConfigEncryptionKey,
			TOTPIssuer:          jsonCfg.App.TOTPIssuer,
			PublicURL:           jsonCfg.App.PublicURL,
			Version:             jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
				Channel:  jsonCfg.Storage.Redis.Channel,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Workers: Workers{
			SessionSweepInterval:  time.Duration(jsonCfg.Workers.SessionSweepInterval),
			RetentionInterval:     time.Duration(jsonCfg.Workers.RetentionInterval),
			RetentionStartupDelay: time.Duration(jsonCfg.Workers.RetentionStartupDelay),
			PolicyPollInterval:    time.Duration(jsonCfg.Workers.PolicyPollInterval),
		},
		Security: Security{
			RoleHierarchy:         jsonCfg.Security.RoleHierarchy,
			MaintenanceBypassRole: jsonCfg.Security.MaintenanceBypassRole,
			AdminRole:             jsonCfg.Security.AdminRole,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
