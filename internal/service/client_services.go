package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mood-journal/internal/analyzer"
	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/crypto"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/internal/utils"
	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/MKhiriev/go-mood-journal/internal/workers"
)

// ClientServices is the wired journal session.
type ClientServices struct {
	Lock     LockController
	Entries  EntryRepository
	Transfer TransferService
	Analyzer *analyzer.Analyzer
	Workers  *workers.Workers
}

// Deps are the collaborators [NewClientServices] can not build itself.
type Deps struct {
	Storages *store.ClientStorages
	Random   utils.RandomSource
	Clock    utils.Clock
	IDs      utils.IDGenerator
}

// NewClientServices wires the crypto primitives, the debounced saver, the
// repository and the lock controller. ctx is handed to background saves and
// should carry the logger.
func NewClientServices(ctx context.Context, deps Deps, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	keys := crypto.NewKeyManager(deps.Storages.Salts, cfg.Crypto.KDFIterations)
	codec := crypto.NewCipherCodec(deps.Random)
	key := newSessionKey(codec)
	validator := validators.NewEntryValidator()

	saver := workers.NewDebouncer(ctx, cfg.Workers.SaveDebounce, log)

	repo := newEntryRepository(key, deps.Storages.Slots, saver, deps.Clock, deps.IDs, validator)
	lock := newLockController(keys, codec, deps.Storages.Slots, repo, key)

	return &ClientServices{
		Lock:     lock,
		Entries:  repo,
		Transfer: NewTransferService(lock, repo, deps.Clock, validator),
		Analyzer: analyzer.New(),
		Workers:  workers.NewWorkers(saver),
	}
}

// Close locks the journal, saving pending changes, and stops the background
// workers. When the final save fails the journal stays unlocked and the
// error is returned so the caller can offer a retry.
func (s *ClientServices) Close(ctx context.Context) error {
	if err := s.Lock.Lock(ctx); err != nil {
		return fmt.Errorf("lock journal: %w", err)
	}
	if err := s.Workers.Stop(ctx); err != nil {
		return fmt.Errorf("stop workers: %w", err)
	}
	return nil
}
