// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"

	defaultRequestTimeout = 30 * time.Second
	defaultControlTimeout = 5 * time.Second
	defaultOwnerID        = 1
	defaultLogLevel       = "debug"
	defaultVersion        = "dev"
)

// applyDefaults fills zero-valued optional fields.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Control.RequestTimeout == 0 {
		cfg.Control.RequestTimeout = defaultControlTimeout
	}
	if cfg.App.DefaultOwnerID == 0 {
		cfg.App.DefaultOwnerID = defaultOwnerID
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application constraints before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.App.DefaultOwnerID < 1 {
		return ErrInvalidAppConfigs
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Control.HTTPAddress != "" {
		u, err := url.Parse(cfg.Control.HTTPAddress)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ErrInvalidControlConfigs
		}
	}
	if cfg.Control.RequestTimeout < 0 {
		return ErrInvalidControlConfigs
	}

	return nil
}
