// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name read from the environment,
// so STORAGE_DRIVER is looked up as JOURNAL_STORAGE_DRIVER.
const EnvPrefix = "JOURNAL_"

// parseEnv fills cfg from JOURNAL_* variables. Unset variables leave their
// fields zero so that lower-priority sources can still supply them.
func parseEnv(cfg *StructuredConfig) error {
	opts := env.Options{Prefix: EnvPrefix}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
