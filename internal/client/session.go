package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/internal/utils"
)

// Session is an opened journal: storage plus the wired services. It starts
// locked.
type Session struct {
	Services *service.ClientServices

	storages *store.ClientStorages
	log      *logger.Logger
}

// OpenSession opens the storage selected by cfg and wires the services on
// top of it.
func OpenSession(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*Session, error) {
	ctx = log.WithContext(ctx)
	random := utils.NewCryptoRandom()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, random, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	services := service.NewClientServices(ctx, service.Deps{
		Storages: storages,
		Random:   random,
		Clock:    utils.NewSystemClock(),
		IDs:      utils.NewUUIDGenerator(),
	}, cfg, log)

	return &Session{Services: services, storages: storages, log: log}, nil
}

// Close locks the journal, which writes pending edits, then releases the
// storage. The storage stays open when the final save fails so the caller
// can retry.
func (s *Session) Close(ctx context.Context) error {
	ctx = s.log.WithContext(ctx)

	if err := s.Services.Close(ctx); err != nil {
		s.log.Err(err).Str("func", "*Session.Close").Msg("error saving journal on close")
		return err
	}
	if err := s.storages.Close(); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}

	s.log.Info().Str("func", "*Session.Close").Msg("journal closed")
	return nil
}
