package client

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/models"
)

const testPassword = "correct horse battery staple"

func testConfig(driver, dir string) *config.ClientConfig {
	return &config.ClientConfig{
		Storage: config.ClientStorage{
			Driver: driver,
			DB:     config.ClientDB{DSN: filepath.Join(dir, "journal.db")},
			File:   config.ClientFile{Path: filepath.Join(dir, "journal.json")},
		},
		Crypto:  config.ClientCrypto{KDFIterations: 120_000},
		Workers: config.ClientWorkers{SaveDebounce: time.Hour},
	}
}

func TestSession_PersistsAcrossReopen(t *testing.T) {
	for _, driver := range []string{config.DriverFile, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(driver, t.TempDir())

			s, err := OpenSession(ctx, cfg, logger.Nop())
			require.NoError(t, err)
			require.True(t, s.Services.Lock.IsLocked())
			require.NoError(t, s.Services.Lock.Unlock(ctx, testPassword))

			e, err := s.Services.Entries.Create(ctx)
			require.NoError(t, err)
			content := "<p>kept across restarts</p>"
			_, err = s.Services.Entries.Update(ctx, e.ID, models.EntryPatch{Content: &content})
			require.NoError(t, err)

			require.NoError(t, s.Close(ctx), "close saves the pending edit")
			assert.True(t, s.Services.Lock.IsLocked())

			s, err = OpenSession(ctx, cfg, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close(ctx) })
			require.NoError(t, s.Services.Lock.Unlock(ctx, testPassword))

			got, err := s.Services.Entries.Get(e.ID)
			require.NoError(t, err)
			assert.Equal(t, content, got.Content)
		})
	}
}

func TestOpenSession_UnknownDriver(t *testing.T) {
	_, err := OpenSession(context.Background(), testConfig("etcd", t.TempDir()), logger.Nop())
	assert.ErrorIs(t, err, store.ErrUnknownDriver)
}
