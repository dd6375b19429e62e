// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
)

// fileState is the on-disk document of [fileStore].
type fileState struct {
	Slots map[string]string `json:"slots"`
}

// fileStore keeps every slot in a single JSON document. Each write replaces
// the document atomically (temp file + rename) with 0600 permissions.
type fileStore struct {
	path string

	mu    sync.RWMutex
	slots map[string]string
}

// NewFileStore opens (or lazily creates on first write) the JSON slot file at
// path.
func NewFileStore(path string) (KeyValueStore, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty file path", ErrPersistence)
	}

	s := &fileStore{
		path:  path,
		slots: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read slot file: %w", ErrPersistence, err)
	}

	var st fileState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: decode slot file: %w", ErrPersistence, err)
	}
	if st.Slots != nil {
		s.slots = st.Slots
	}

	return nil
}

// persist writes slots to disk. Caller must hold s.mu.
func (s *fileStore) persist(slots map[string]string) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create slot file dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(fileState{Slots: slots}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode slot file: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp slot file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp slot file: %w", err)
	}
	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp slot file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp slot file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp slot file: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace slot file: %w", err)
	}
	return nil
}

// Get implements [KeyValueStore].
func (s *fileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.slots[key]
	if !ok {
		return "", ErrSlotNotFound
	}
	return v, nil
}

// Set implements [KeyValueStore]. On failure the in-memory view is left as
// it was before the call.
func (s *fileStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneSlots(s.slots)
	next[key] = value
	if err := s.persist(next); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileStore.Set").Str("slot", key).Msg("error writing slot file")
		return fmt.Errorf("%w: set slot %q: %w", ErrPersistence, key, err)
	}
	s.slots = next
	return nil
}

// Delete implements [KeyValueStore].
func (s *fileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.slots[key]; !ok {
		return nil
	}

	next := cloneSlots(s.slots)
	delete(next, key)
	if err := s.persist(next); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileStore.Delete").Str("slot", key).Msg("error writing slot file")
		return fmt.Errorf("%w: delete slot %q: %w", ErrPersistence, key, err)
	}
	s.slots = next
	return nil
}

// Close implements [KeyValueStore].
func (s *fileStore) Close() error {
	return nil
}

func cloneSlots(in map[string]string) map[string]string {
	out := make(map[string]string, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}
