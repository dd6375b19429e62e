package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		Storage: ClientStorage{Driver: DriverSQLite, DB: ClientDB{DSN: "j.db"}},
		Crypto:  ClientCrypto{KDFIterations: 120_000},
		Workers: ClientWorkers{SaveDebounce: 400 * time.Millisecond},
		Log:     ClientLog{Level: "info"},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "memory needs nothing", mutate: func(c *ClientConfig) { c.Storage = ClientStorage{Driver: DriverMemory} }},
		{name: "unknown driver", mutate: func(c *ClientConfig) { c.Storage.Driver = "redis" }, wantErr: ErrInvalidStorageConfigs},
		{name: "sqlite without dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "file without path", mutate: func(c *ClientConfig) { c.Storage.Driver = DriverFile }, wantErr: ErrInvalidStorageConfigs},
		{name: "low iterations", mutate: func(c *ClientConfig) { c.Crypto.KDFIterations = 1000 }, wantErr: ErrInvalidCryptoConfigs},
		{name: "zero debounce", mutate: func(c *ClientConfig) { c.Workers.SaveDebounce = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "bad log level", mutate: func(c *ClientConfig) { c.Log.Level = "loud" }, wantErr: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
