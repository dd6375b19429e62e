// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-mood-journal/internal/crypto"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/utils"
)

// SaltLength is the size of a newly generated KDF salt in bytes.
const SaltLength = 16

// SaltStore implements [crypto.SaltProvider] on top of the salt slot.
//
// Once a salt has been persisted it is never regenerated: a stored value that
// can not be decoded is reported as [crypto.ErrMalformedBlob] instead of being
// replaced, since a new salt would silently orphan every encrypted blob.
type SaltStore struct {
	kv     KeyValueStore
	random utils.RandomSource

	mu     sync.Mutex
	cached []byte
}

// NewSaltStore constructs a [SaltStore].
func NewSaltStore(kv KeyValueStore, random utils.RandomSource) *SaltStore {
	return &SaltStore{kv: kv, random: random}
}

// GetOrCreateSalt implements [crypto.SaltProvider].
func (s *SaltStore) GetOrCreateSalt(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return cloneBytes(s.cached), nil
	}

	log := logger.FromContext(ctx)

	encoded, err := s.kv.Get(ctx, SlotSalt)
	switch {
	case err == nil:
		salt, decodeErr := base64.StdEncoding.DecodeString(encoded)
		if decodeErr != nil || len(salt) < SaltLength {
			log.Error().Str("func", "*SaltStore.GetOrCreateSalt").Msg("stored salt is corrupted")
			return nil, fmt.Errorf("%w: stored salt can not be decoded", crypto.ErrMalformedBlob)
		}
		s.cached = salt
		return cloneBytes(salt), nil

	case errors.Is(err, ErrSlotNotFound):
		// first run

	default:
		log.Err(err).Str("func", "*SaltStore.GetOrCreateSalt").Msg("error reading salt slot")
		return nil, fmt.Errorf("read salt: %w", err)
	}

	salt, err := s.random.Read(SaltLength)
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	if err = s.kv.Set(ctx, SlotSalt, base64.StdEncoding.EncodeToString(salt)); err != nil {
		log.Err(err).Str("func", "*SaltStore.GetOrCreateSalt").Msg("error persisting new salt")
		return nil, fmt.Errorf("persist salt: %w", err)
	}
	log.Info().Str("func", "*SaltStore.GetOrCreateSalt").Msg("generated new installation salt")

	s.cached = salt
	return cloneBytes(salt), nil
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
