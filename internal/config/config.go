// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage drivers understood by the persistence layer.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// StructuredConfig is the top-level configuration container for the
// go-mood-journal application. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment
// variables, an optional JSON file and built-in defaults.
//
// Every env tag is read with [EnvPrefix] in front of it.
type StructuredConfig struct {
	// Storage selects and configures the slot store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Crypto holds key derivation settings.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log configures the client log file.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the JOURNAL_CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// Driver is one of "sqlite", "file" or "memory".
	// Env: JOURNAL_STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// File holds the JSON slot file settings.
	File File `envPrefix:"FILE_"`
}

// DB holds connection settings for the SQLite backend.
type DB struct {
	// DSN is the SQLite database file path (e.g. "~/.config/go-mood-journal/journal.db").
	// Env: JOURNAL_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// File holds settings for the JSON file backend.
type File struct {
	// Path is the location of the JSON slot file.
	// Env: JOURNAL_STORAGE_FILE_PATH
	Path string `env:"PATH"`
}

// Crypto holds key derivation settings.
type Crypto struct {
	// KDFIterations is the PBKDF2 iteration count. It can only be raised
	// above the built-in minimum; existing journals must keep using the
	// value they were created with.
	// Env: JOURNAL_CRYPTO_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SaveDebounce is the quiet period after the last edit before the
	// journal is re-encrypted and written (e.g. "400ms").
	// Env: JOURNAL_WORKERS_SAVE_DEBOUNCE
	SaveDebounce time.Duration `env:"SAVE_DEBOUNCE"`
}

// Log configures logging. The terminal UI owns stdout, so logs go to a file.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: JOURNAL_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file path.
	// Env: JOURNAL_LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. flags carries the values bound by [BindFlags] and may be
// nil. Sources are merged in the following priority order (the first
// non-zero value of a field wins):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
