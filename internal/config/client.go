// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the admin client transport.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server, e.g. "http://localhost:8080".
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the timeout for outbound requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the admin command line client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"CLIENT_"`

	// Token is the bearer access token of an administrator.
	// Env: CLIENT_TOKEN
	Token string `env:"CLIENT_TOKEN"`
}

// GetClientConfig reads the admin client configuration from the environment,
// applies overrides coming from command line flags, and validates it.
func GetClientConfig(overrides ClientConfig) (*ClientConfig, error) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://" + DefaultHTTPAddress,
			RequestTimeout: 15 * time.Second,
		},
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	if overrides.Adapter.HTTPAddress != "" {
		cfg.Adapter.HTTPAddress = overrides.Adapter.HTTPAddress
	}
	if overrides.Adapter.RequestTimeout > 0 {
		cfg.Adapter.RequestTimeout = overrides.Adapter.RequestTimeout
	}
	if overrides.Token != "" {
		cfg.Token = overrides.Token
	}

	return cfg, cfg.validate()
}
