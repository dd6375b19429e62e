// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Crypto.KDFIterations != 0 && cfg.Crypto.KDFIterations < defaultKDFIterations {
		return fmt.Errorf("%w: kdf iterations %d below minimum %d",
			ErrInvalidCryptoConfigs, cfg.Crypto.KDFIterations, defaultKDFIterations)
	}

	if cfg.Workers.SaveDebounce < 0 {
		return fmt.Errorf("%w: negative save debounce", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: empty sqlite dsn", ErrInvalidStorageConfigs)
		}
	case DriverFile:
		if cfg.Storage.File.Path == "" {
			return fmt.Errorf("%w: empty file path", ErrInvalidStorageConfigs)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.Crypto.KDFIterations < defaultKDFIterations {
		return fmt.Errorf("%w: kdf iterations %d", ErrInvalidCryptoConfigs, cfg.Crypto.KDFIterations)
	}

	if cfg.Workers.SaveDebounce <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
