// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	appDirName = "go-mood-journal"

	defaultKDFIterations = 120_000
	defaultSaveDebounce  = 400 * time.Millisecond
	defaultLogLevel      = "info"
)

// defaultConfig returns the lowest-priority configuration source: a SQLite
// journal and a log file under the user's config directory.
func defaultConfig() *StructuredConfig {
	dir := defaultDataDir()

	return &StructuredConfig{
		Storage: Storage{
			Driver: DriverSQLite,
			DB:     DB{DSN: filepath.Join(dir, "journal.db")},
			File:   File{Path: filepath.Join(dir, "journal.json")},
		},
		Crypto:  Crypto{KDFIterations: defaultKDFIterations},
		Workers: Workers{SaveDebounce: defaultSaveDebounce},
		Log: Log{
			Level: defaultLogLevel,
			File:  filepath.Join(dir, "journal.log"),
		},
	}
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return "."
	}
	return filepath.Join(base, appDirName)
}
