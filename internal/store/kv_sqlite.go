// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
)

const slotsTable = "journal_slots"

// sqliteStore is the SQLite-backed implementation of [KeyValueStore]. Slots
// live in a single table keyed by slot name.
type sqliteStore struct {
	db  *DB
	sb  sq.StatementBuilderType
	now func() time.Time
}

// NewSQLiteStore constructs a [KeyValueStore] on top of an open, migrated
// database.
func NewSQLiteStore(db *DB) KeyValueStore {
	return &sqliteStore{
		db:  db,
		sb:  sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Get implements [KeyValueStore].
func (s *sqliteStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.sb.Select("value").
		From(slotsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqliteStore.Get").Str("slot", key).Msg("error building query")
		return "", fmt.Errorf("%w: %w: %w", ErrPersistence, ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSlotNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqliteStore.Get").Str("slot", key).Msg("error reading slot")
		return "", fmt.Errorf("%w: %w: get slot %q: %w", ErrPersistence, ErrExecutingQuery, key, err)
	}

	return value, nil
}

// Set implements [KeyValueStore] as an upsert.
func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.sb.Insert(slotsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, s.now()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqliteStore.Set").Str("slot", key).Msg("error building query")
		return fmt.Errorf("%w: %w: %w", ErrPersistence, ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteStore.Set").Str("slot", key).Msg("error writing slot")
		return fmt.Errorf("%w: %w: set slot %q: %w", ErrPersistence, ErrExecutingStatement, key, err)
	}

	return nil
}

// Delete implements [KeyValueStore].
func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.sb.Delete(slotsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqliteStore.Delete").Str("slot", key).Msg("error building query")
		return fmt.Errorf("%w: %w: %w", ErrPersistence, ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteStore.Delete").Str("slot", key).Msg("error deleting slot")
		return fmt.Errorf("%w: %w: delete slot %q: %w", ErrPersistence, ErrExecutingStatement, key, err)
	}

	return nil
}

// Close implements [KeyValueStore].
func (s *sqliteStore) Close() error {
	return s.db.Close()
}
