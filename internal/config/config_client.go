package config

import (
	"fmt"
	"time"
)

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientFile contains settings of the JSON file backend.
type ClientFile struct {
	// Path is the JSON slot file location.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Driver selects the backend: "sqlite", "file" or "memory".
	Driver string
	// DB holds local database settings.
	DB ClientDB
	// File holds JSON file settings.
	File ClientFile
}

// ClientCrypto contains key derivation settings.
type ClientCrypto struct {
	// KDFIterations is the PBKDF2 iteration count.
	KDFIterations int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SaveDebounce is the quiet period before a pending save runs.
	SaveDebounce time.Duration
}

// ClientLog contains logging settings.
type ClientLog struct {
	// Level is the minimum zerolog level.
	Level string
	// File is the log file path.
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Storage contains client storage settings.
	Storage ClientStorage
	// Crypto contains key derivation settings.
	Crypto ClientCrypto
	// Workers contains background job settings.
	Workers ClientWorkers
	// Log contains logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Storage: ClientStorage{
			Driver: cfg.Storage.Driver,
			DB:     ClientDB{DSN: cfg.Storage.DB.DSN},
			File:   ClientFile{Path: cfg.Storage.File.Path},
		},
		Crypto:  ClientCrypto{KDFIterations: cfg.Crypto.KDFIterations},
		Workers: ClientWorkers{SaveDebounce: cfg.Workers.SaveDebounce},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
	}
}
