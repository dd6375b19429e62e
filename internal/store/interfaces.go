// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the journal's persistence boundary: a small
// key-value store holding three named text slots (the KDF salt, the
// encrypted entry collection and the optional passphrase hint).
//
// Backends:
//   - SQLite (mattn/go-sqlite3), schema managed by goose migrations;
//   - a single JSON file written with 0600 permissions;
//   - memory, for tests and throwaway sessions.
//
// Stores are single-writer resources; concurrent writers from different
// processes are not supported.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Slot names. They match the keys used by earlier versions of the journal so
// an existing installation keeps its salt and entries.
const (
	SlotSalt    = "wj_kdf_salt_v1"
	SlotEntries = "wj_entries_v2"
	SlotHint    = "wj_pass_hint_v1"
)

// KeyValueStore persists opaque text values under string keys.
type KeyValueStore interface {
	// Get returns the value stored under key, or [ErrSlotNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Set creates or overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}
