package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/utils"
)

// Storage drivers accepted by [NewClientStorages].
const (
	DriverSQLite = config.DriverSQLite
	DriverFile   = config.DriverFile
	DriverMemory = config.DriverMemory
)

// ClientStorages groups the persistence collaborators of the journal.
type ClientStorages struct {
	// Slots is the key-value store holding the salt, blob and hint slots.
	Slots KeyValueStore

	// Salts provides the per-installation KDF salt.
	Salts *SaltStore
}

// NewClientStorages initialises the storage layer selected by cfg.Driver:
//   - sqlite: opens (creating if needed) the database at cfg.DB.DSN and runs
//     pending migrations;
//   - file: opens the JSON slot file at cfg.File.Path;
//   - memory: keeps everything in process memory.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, random utils.RandomSource, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		kv  KeyValueStore
		err error
	)

	switch cfg.Driver {
	case DriverSQLite:
		db, openErr := OpenSQLite(ctx, cfg.DB, log)
		if openErr != nil {
			return nil, fmt.Errorf("sqlite storage error: %w", openErr)
		}
		kv = NewSQLiteStore(db)
	case DriverFile:
		kv, err = NewFileStore(cfg.File.Path)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
	case DriverMemory:
		kv = NewMemoryStore()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	return &ClientStorages{
		Slots: kv,
		Salts: NewSaltStore(kv, random),
	}, nil
}

// Close releases the underlying key-value store.
func (s *ClientStorages) Close() error {
	return s.Slots.Close()
}
