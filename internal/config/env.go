// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays environment variables on cfg through its env and
// envPrefix tags. Fields whose variable is unset keep their current value,
// so defaults applied earlier survive.
func parseEnv[T StructuredConfig | ClientConfig](cfg *T) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
