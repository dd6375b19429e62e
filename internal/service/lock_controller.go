// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-mood-journal/internal/crypto"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/richtext"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/models"
)

type lockController struct {
	keys    crypto.KeyManager
	codec   crypto.CipherCodec
	slots   store.KeyValueStore
	session EntrySession
	key     *sessionKey

	// mu serializes state transitions; it is never held by a save.
	mu sync.Mutex
}

// NewLockController constructs a locked [LockController]. session is opened
// with the decrypted entries on unlock.
func NewLockController(keys crypto.KeyManager, codec crypto.CipherCodec, slots store.KeyValueStore, session EntrySession) LockController {
	return newLockController(keys, codec, slots, session, newSessionKey(codec))
}

func newLockController(keys crypto.KeyManager, codec crypto.CipherCodec, slots store.KeyValueStore, session EntrySession, key *sessionKey) *lockController {
	return &lockController{
		keys:    keys,
		codec:   codec,
		slots:   slots,
		session: session,
		key:     key,
	}
}

func (c *lockController) Unlock(ctx context.Context, passphrase string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	log := logger.FromContext(ctx)

	if c.key.isSet() {
		return ErrAlreadyUnlocked
	}

	key, err := c.keys.DeriveKey(ctx, passphrase)
	if err != nil {
		log.Err(err).Str("func", "*lockController.Unlock").Msg("error deriving key")
		return fmt.Errorf("derive key: %w", err)
	}

	entries, err := c.loadEntries(ctx, key)
	if err != nil {
		crypto.SecureWipe(key)
		log.Err(err).Str("func", "*lockController.Unlock").Msg("unlock failed")
		return err
	}

	c.key.set(key)
	c.session.Open(entries)

	log.Info().Str("func", "*lockController.Unlock").Int("entries", len(entries)).Msg("journal unlocked")
	return nil
}

// loadEntries reads and decrypts the stored collection. A missing slot is an
// empty journal.
func (c *lockController) loadEntries(ctx context.Context, key []byte) ([]models.JournalEntry, error) {
	text, err := c.slots.Get(ctx, store.SlotEntries)
	if errors.Is(err, store.ErrSlotNotFound) {
		return []models.JournalEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}

	blob, err := crypto.ParseEncryptedBlob(text)
	if err != nil {
		return nil, err
	}

	plaintext, err := c.codec.Decrypt(blob, key)
	if err != nil {
		return nil, err
	}
	defer crypto.SecureWipe(plaintext)

	var stored []storedEntry
	if err = json.Unmarshal(plaintext, &stored); err != nil {
		return nil, fmt.Errorf("%w: decode journal: %v", crypto.ErrMalformedBlob, err)
	}

	entries := make([]models.JournalEntry, 0, len(stored))
	unknownMoods := 0
	for _, s := range stored {
		e, moodKnown := s.toEntry()
		if !moodKnown {
			unknownMoods++
		}
		entries = append(entries, e)
	}
	if unknownMoods > 0 {
		logger.FromContext(ctx).Warn().Str("func", "*lockController.loadEntries").
			Int("entries", unknownMoods).Msg("unknown mood replaced with the default")
	}
	return entries, nil
}

// storedEntry is the persisted shape of an entry. Content may sit in the
// older "html" field. Mood stays raw so an unrecognised value falls back to
// the default mood instead of failing the unlock.
type storedEntry struct {
	models.ExportRecord
	Mood json.RawMessage `json:"mood"`
}

// toEntry converts s, reporting false when its mood was present but unknown.
func (s storedEntry) toEntry() (models.JournalEntry, bool) {
	var e models.JournalEntry
	if s.ID != nil {
		e.ID = *s.ID
	}
	e.Content, _ = s.ContentValue()
	e.WordCount = richtext.WordCount(e.Content)
	if s.Tags != nil {
		e.Tags = *s.Tags
	}
	e.Tags = models.NormalizeTags(e.Tags)
	if s.CreatedAt != nil {
		e.CreatedAt = *s.CreatedAt
	}
	if s.UpdatedAt != nil {
		e.UpdatedAt = *s.UpdatedAt
	}

	e.Mood = models.DefaultMood
	if len(s.Mood) == 0 || string(s.Mood) == "null" {
		return e, true
	}
	var m models.Mood
	if err := json.Unmarshal(s.Mood, &m); err != nil {
		return e, false
	}
	e.Mood = m
	return e, true
}

func (c *lockController) Lock(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	log := logger.FromContext(ctx)

	if !c.key.isSet() {
		return nil
	}

	if err := c.session.Flush(ctx); err != nil {
		log.Err(err).Str("func", "*lockController.Lock").Msg("pending changes could not be saved, staying unlocked")
		return fmt.Errorf("save before lock: %w", err)
	}

	c.session.Close()
	c.key.wipe()

	log.Info().Str("func", "*lockController.Lock").Msg("journal locked")
	return nil
}

func (c *lockController) IsLocked() bool {
	return !c.key.isSet()
}

func (c *lockController) Seal(plaintext []byte) (crypto.EncryptedBlob, error) {
	return c.key.Seal(plaintext)
}

func (c *lockController) VerifyPassphrase(ctx context.Context, passphrase string) error {
	if !c.key.isSet() {
		return ErrNotUnlocked
	}

	candidate, err := c.keys.DeriveKey(ctx, passphrase)
	if err != nil {
		return fmt.Errorf("derive key: %w", err)
	}
	defer crypto.SecureWipe(candidate)

	if !c.key.equal(candidate) {
		logger.FromContext(ctx).Warn().Str("func", "*lockController.VerifyPassphrase").Msg("passphrase mismatch")
		return crypto.ErrAuthenticationFailed
	}
	return nil
}

func (c *lockController) Hint(ctx context.Context) (string, error) {
	hint, err := c.slots.Get(ctx, store.SlotHint)
	if errors.Is(err, store.ErrSlotNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read hint: %w", err)
	}
	return hint, nil
}

func (c *lockController) SetHint(ctx context.Context, hint string) error {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		if err := c.slots.Delete(ctx, store.SlotHint); err != nil {
			return fmt.Errorf("delete hint: %w", err)
		}
		return nil
	}

	if err := c.slots.Set(ctx, store.SlotHint, hint); err != nil {
		return fmt.Errorf("write hint: %w", err)
	}
	return nil
}
