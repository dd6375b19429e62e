package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
)

func testCtx() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newMockSQLiteStore(t *testing.T) (KeyValueStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSQLiteStore(&DB{DB: db}), mock
}

func TestSQLiteStore_Get_Success(t *testing.T) {
	s, mock := newMockSQLiteStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM journal_slots WHERE key = ?")).
		WithArgs(SlotEntries).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("nonce.cipher"))

	v, err := s.Get(testCtx(), SlotEntries)
	require.NoError(t, err)
	assert.Equal(t, "nonce.cipher", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Get_NotFound(t *testing.T) {
	s, mock := newMockSQLiteStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM journal_slots WHERE key = ?")).
		WithArgs(SlotHint).
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(testCtx(), SlotHint)
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.NotErrorIs(t, err, ErrPersistence)
}

func TestSQLiteStore_Get_DBError(t *testing.T) {
	s, mock := newMockSQLiteStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM journal_slots WHERE key = ?")).
		WithArgs(SlotSalt).
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.Get(testCtx(), SlotSalt)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestSQLiteStore_Set_Upsert(t *testing.T) {
	s, mock := newMockSQLiteStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO journal_slots (key,value,updated_at) VALUES (?,?,?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")).
		WithArgs(SlotEntries, "blob", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(testCtx(), SlotEntries, "blob"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Set_DBError(t *testing.T) {
	s, mock := newMockSQLiteStore(t)

	mock.ExpectExec("INSERT INTO journal_slots").
		WillReturnError(errors.New("database is locked"))

	err := s.Set(testCtx(), SlotEntries, "blob")
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteStore_Delete(t *testing.T) {
	s, mock := newMockSQLiteStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM journal_slots WHERE key = ?")).
		WithArgs(SlotHint).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Delete(testCtx(), SlotHint))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Delete_DBError(t *testing.T) {
	s, mock := newMockSQLiteStore(t)

	mock.ExpectExec("DELETE FROM journal_slots").
		WillReturnError(errors.New("readonly database"))

	assert.ErrorIs(t, s.Delete(testCtx(), SlotHint), ErrPersistence)
}

func TestSQLiteStore_RealDatabase(t *testing.T) {
	ctx := testCtx()
	dsn := filepath.Join(t.TempDir(), "journal.db")

	db, err := OpenSQLite(ctx, config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)

	info, err := os.Stat(dsn)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	s := NewSQLiteStore(db)
	defer s.Close()

	_, err = s.Get(ctx, SlotEntries)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	require.NoError(t, s.Set(ctx, SlotEntries, "v1"))
	require.NoError(t, s.Set(ctx, SlotEntries, "v2"))

	v, err := s.Get(ctx, SlotEntries)
	require.NoError(t, err)
	assert.Equal(t, "v2", v)

	require.NoError(t, s.Delete(ctx, SlotEntries))
	_, err = s.Get(ctx, SlotEntries)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestSQLiteDSN_EscapesPath(t *testing.T) {
	dsn := sqliteDSN("/data/we?ird #1/100%/journal.db")

	assert.True(t, strings.HasPrefix(dsn, "file:/data/we%3Fird%20%231/100%25/journal.db?"), dsn)
	assert.Contains(t, dsn, "_busy_timeout=5000")
	assert.Contains(t, dsn, "_synchronous=FULL")
	assert.Equal(t, 1, strings.Count(dsn, "?"))
}

func TestOpenSQLite_PathWithURICharacters(t *testing.T) {
	ctx := testCtx()
	dir := filepath.Join(t.TempDir(), "notes?v=1#draft")
	dsn := filepath.Join(dir, "journal.db")

	db, err := OpenSQLite(ctx, config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)

	s := NewSQLiteStore(db)
	require.NoError(t, s.Set(ctx, SlotHint, "kept"))
	require.NoError(t, s.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "journal.db")

	reopened, err := OpenSQLite(ctx, config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	s = NewSQLiteStore(reopened)
	defer s.Close()

	v, err := s.Get(ctx, SlotHint)
	require.NoError(t, err)
	assert.Equal(t, "kept", v)
}
