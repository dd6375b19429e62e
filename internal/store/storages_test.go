package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/utils"
)

func TestNewClientStorages_Drivers(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.ClientStorage
	}{
		{name: "memory", cfg: config.ClientStorage{Driver: DriverMemory}},
		{name: "file", cfg: config.ClientStorage{Driver: DriverFile, File: config.ClientFile{Path: filepath.Join(dir, "j.json")}}},
		{name: "sqlite", cfg: config.ClientStorage{Driver: DriverSQLite, DB: config.ClientDB{DSN: filepath.Join(dir, "j.db")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testCtx()
			s, err := NewClientStorages(ctx, tt.cfg, utils.NewCryptoRandom(), logger.Nop())
			require.NoError(t, err)
			defer s.Close()

			salt, err := s.Salts.GetOrCreateSalt(ctx)
			require.NoError(t, err)
			assert.Len(t, salt, SaltLength)

			_, err = s.Slots.Get(ctx, SlotSalt)
			assert.NoError(t, err)
		})
	}
}

func TestNewClientStorages_UnknownDriver(t *testing.T) {
	_, err := NewClientStorages(testCtx(), config.ClientStorage{Driver: "postgres"}, utils.NewCryptoRandom(), logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
