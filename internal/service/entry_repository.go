// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-mood-journal/internal/crypto"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/richtext"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/internal/utils"
	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/MKhiriev/go-mood-journal/models"
)

// entryRepository keeps the decrypted collection in memory and persists it
// as one sealed blob.
//
// Every mutation bumps rev and schedules a save. A save snapshots
// (rev, entries) and writes only if rev is newer than persistedRev; saves
// are serialized by saveMu, so an older snapshot never overwrites a newer
// one.
type entryRepository struct {
	sealer    Sealer
	slots     store.KeyValueStore
	scheduler Scheduler
	clock     utils.Clock
	ids       utils.IDGenerator
	validator validators.Validator

	mu       sync.RWMutex
	open     bool
	entries  []models.JournalEntry
	activeID string
	rev      uint64
	saveErr  error

	saveMu       sync.Mutex
	persistedRev uint64
}

// newEntryRepository constructs a closed repository. It becomes usable once
// the lock controller opens it.
func newEntryRepository(
	sealer Sealer,
	slots store.KeyValueStore,
	scheduler Scheduler,
	clock utils.Clock,
	ids utils.IDGenerator,
	validator validators.Validator,
) *entryRepository {
	return &entryRepository{
		sealer:    sealer,
		slots:     slots,
		scheduler: scheduler,
		clock:     clock,
		ids:       ids,
		validator: validator,
	}
}

// Open implements [EntrySession].
func (r *entryRepository) Open(entries []models.JournalEntry) {
	r.saveMu.Lock()
	defer r.saveMu.Unlock()
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = cloneEntries(entries)
	r.open = true
	r.activeID = ""
	r.rev = 0
	r.persistedRev = 0
	r.saveErr = nil
}

// Close implements [EntrySession]. Unsaved changes are dropped; the lock
// controller flushes first.
func (r *entryRepository) Close() {
	r.saveMu.Lock()
	defer r.saveMu.Unlock()
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		r.entries[i] = models.JournalEntry{}
	}
	r.entries = nil
	r.open = false
	r.activeID = ""
	r.rev = 0
	r.persistedRev = 0
	r.saveErr = nil
}

func (r *entryRepository) Create(ctx context.Context) (models.JournalEntry, error) {
	r.mu.Lock()
	if !r.open {
		r.mu.Unlock()
		return models.JournalEntry{}, ErrNotUnlocked
	}

	now := r.clock.Now()
	e := models.JournalEntry{
		ID:        r.ids.Generate(),
		Mood:      models.DefaultMood,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.entries = append(r.entries, e)
	r.activeID = e.ID
	r.rev++
	r.mu.Unlock()

	r.scheduleSave(ctx)
	return e.Clone(), nil
}

func (r *entryRepository) Update(ctx context.Context, id string, patch models.EntryPatch) (models.JournalEntry, error) {
	if !r.isOpen() {
		return models.JournalEntry{}, ErrNotUnlocked
	}
	if err := r.validator.Validate(ctx, patch); err != nil {
		return models.JournalEntry{}, fmt.Errorf("invalid patch: %w", err)
	}

	r.mu.Lock()
	if !r.open {
		r.mu.Unlock()
		return models.JournalEntry{}, ErrNotUnlocked
	}

	i := r.indexOf(id)
	if i < 0 {
		r.mu.Unlock()
		return models.JournalEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}

	e := &r.entries[i]
	if patch.Content != nil {
		e.Content = *patch.Content
		e.WordCount = richtext.WordCount(e.Content)
	}
	if patch.Mood != nil {
		e.Mood = *patch.Mood
	}
	if patch.Tags != nil {
		e.Tags = models.NormalizeTags(*patch.Tags)
	}
	if now := r.clock.Now(); now.After(e.CreatedAt) {
		e.UpdatedAt = now
	} else {
		e.UpdatedAt = e.CreatedAt
	}
	updated := e.Clone()
	r.rev++
	r.mu.Unlock()

	r.scheduleSave(ctx)
	return updated, nil
}

func (r *entryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	if !r.open {
		r.mu.Unlock()
		return ErrNotUnlocked
	}

	i := r.indexOf(id)
	if i < 0 {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}

	r.entries = slices.Delete(r.entries, i, i+1)
	if r.activeID == id {
		r.activeID = ""
	}
	r.rev++
	r.mu.Unlock()

	r.scheduleSave(ctx)
	return nil
}

func (r *entryRepository) Replace(ctx context.Context, entries []models.JournalEntry) error {
	r.mu.Lock()
	if !r.open {
		r.mu.Unlock()
		return ErrNotUnlocked
	}

	r.entries = cloneEntries(entries)
	if r.indexOf(r.activeID) < 0 {
		r.activeID = ""
	}
	r.rev++
	r.mu.Unlock()

	r.scheduleSave(ctx)
	return nil
}

func (r *entryRepository) Get(id string) (models.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.open {
		return models.JournalEntry{}, ErrNotUnlocked
	}
	i := r.indexOf(id)
	if i < 0 {
		return models.JournalEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return r.entries[i].Clone(), nil
}

func (r *entryRepository) List() ([]models.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.open {
		return nil, ErrNotUnlocked
	}
	return r.sorted(), nil
}

func (r *entryRepository) Search(query models.SearchQuery) ([]models.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.open {
		return nil, ErrNotUnlocked
	}

	text := strings.ToLower(strings.TrimSpace(query.Text))
	tag := strings.TrimSpace(query.Tag)

	out := make([]models.JournalEntry, 0, len(r.entries))
	for _, e := range r.sorted() {
		if query.Mood != nil && e.Mood != *query.Mood {
			continue
		}
		if tag != "" && !e.HasTag(tag) {
			continue
		}
		if text != "" && !matchesText(e, text) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// matchesText reports whether the lowercase needle occurs in the plain text,
// mood label or any tag of e.
func matchesText(e models.JournalEntry, needle string) bool {
	if strings.Contains(strings.ToLower(richtext.Strip(e.Content)), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Mood.Label()), needle) {
		return true
	}
	for _, t := range e.Tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

// Active returns the selected entry. ok is false when nothing is selected.
func (r *entryRepository) Active() (models.JournalEntry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.open {
		return models.JournalEntry{}, false, ErrNotUnlocked
	}
	if r.activeID == "" {
		return models.JournalEntry{}, false, nil
	}
	i := r.indexOf(r.activeID)
	if i < 0 {
		return models.JournalEntry{}, false, nil
	}
	return r.entries[i].Clone(), true, nil
}

func (r *entryRepository) isOpen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.open
}

func (r *entryRepository) Select(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.open {
		return ErrNotUnlocked
	}
	if r.indexOf(id) < 0 {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	r.activeID = id
	return nil
}

func (r *entryRepository) Tags() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.open {
		return nil, ErrNotUnlocked
	}

	tags := make([]string, 0)
	for _, e := range r.entries {
		tags = append(tags, e.Tags...)
	}
	slices.Sort(tags)
	return slices.Compact(tags), nil
}

func (r *entryRepository) Stats(id string) (models.EntryStats, error) {
	e, err := r.Get(id)
	if err != nil {
		return models.EntryStats{}, err
	}
	return richtext.Stats(e.Content), nil
}

func (r *entryRepository) Flush(ctx context.Context) error {
	if err := r.scheduler.Flush(ctx); err != nil {
		return err
	}
	// retries a background save that failed earlier
	return r.save(ctx)
}

func (r *entryRepository) SaveErr() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saveErr
}

func (r *entryRepository) SavePending() bool {
	return r.scheduler.Pending()
}

func (r *entryRepository) scheduleSave(ctx context.Context) {
	if err := r.scheduler.Schedule(r.save); err != nil {
		// the scheduler is shutting down; save on the caller's goroutine
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*entryRepository.scheduleSave").Msg("saving synchronously")
		_ = r.save(ctx)
	}
}

// save seals and writes the current collection if it changed since the last
// successful write.
func (r *entryRepository) save(ctx context.Context) error {
	r.saveMu.Lock()
	defer r.saveMu.Unlock()

	log := logger.FromContext(ctx)

	r.mu.RLock()
	if !r.open || r.rev <= r.persistedRev {
		r.mu.RUnlock()
		return nil
	}
	rev := r.rev
	snapshot := cloneEntries(r.entries)
	r.mu.RUnlock()

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return r.saveFailed(fmt.Errorf("encode journal: %w", err))
	}
	blob, err := r.sealer.Seal(payload)
	crypto.SecureWipe(payload)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.save").Msg("error sealing journal")
		return r.saveFailed(fmt.Errorf("seal journal: %w", err))
	}

	if err = r.slots.Set(ctx, store.SlotEntries, blob.String()); err != nil {
		log.Err(err).Str("func", "*entryRepository.save").Uint64("rev", rev).Msg("error writing journal")
		return r.saveFailed(fmt.Errorf("write journal: %w", err))
	}

	r.persistedRev = rev
	r.mu.Lock()
	r.saveErr = nil
	r.mu.Unlock()

	log.Debug().Str("func", "*entryRepository.save").Uint64("rev", rev).Int("entries", len(snapshot)).Msg("journal saved")
	return nil
}

func (r *entryRepository) saveFailed(err error) error {
	r.mu.Lock()
	r.saveErr = err
	r.mu.Unlock()
	return err
}

// indexOf must be called with mu held.
func (r *entryRepository) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(r.entries, func(e models.JournalEntry) bool { return e.ID == id })
}

// sorted must be called with mu held.
func (r *entryRepository) sorted() []models.JournalEntry {
	out := cloneEntries(r.entries)
	slices.SortStableFunc(out, func(a, b models.JournalEntry) int {
		return cmp.Compare(b.UpdatedAt.UnixNano(), a.UpdatedAt.UnixNano())
	})
	return out
}

func cloneEntries(entries []models.JournalEntry) []models.JournalEntry {
	out := make([]models.JournalEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}
