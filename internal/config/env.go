// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Section prefixes come
// from the envPrefix tags of [StructuredConfig], so SERVER_ADDRESS lands in
// Server.HTTPAddress and CONTROL_ADDRESS in Control.HTTPAddress.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{
		TagName:             "env",
		PrefixTagName:       "envPrefix",
		DefaultValueTagName: "envDefault",
	}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
