// Package service holds the journal's session logic: the lock state machine
// guarding the derived key, the in-memory entry repository with its debounced
// encrypted save, and plaintext import/export.
//
// Every operation on entries requires an unlocked session. While locked the
// only readable state is the passphrase hint.
package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-mood-journal/internal/crypto"
	"github.com/MKhiriev/go-mood-journal/internal/workers"
	"github.com/MKhiriev/go-mood-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Sealer encrypts a payload under the key of the unlocked session.
type Sealer interface {
	// Seal returns [ErrNotUnlocked] while the session is locked.
	Seal(plaintext []byte) (crypto.EncryptedBlob, error)
}

// Scheduler defers save tasks. [workers.Debouncer] is the production
// implementation.
type Scheduler interface {
	Schedule(task workers.Task) error
	Flush(ctx context.Context) error
	// Pending reports whether a task is waiting to run.
	Pending() bool
}

// EntrySession is the part of the repository driven by [LockController]: it
// is opened with the decrypted collection on unlock and flushed then closed
// on lock.
type EntrySession interface {
	Open(entries []models.JournalEntry)
	Close()
	Flush(ctx context.Context) error
}

// LockController owns the derived key and the Locked/Unlocked state.
type LockController interface {
	// Unlock derives the key from passphrase, decrypts the stored collection
	// and opens the repository. A missing blob is an empty journal. On any
	// failure the session stays locked and the derived key is wiped.
	Unlock(ctx context.Context, passphrase string) error

	// Lock flushes pending saves, then wipes the key and clears the
	// repository. If the flush fails the session stays unlocked and the
	// error is returned.
	Lock(ctx context.Context) error

	// IsLocked reports the current state.
	IsLocked() bool

	Sealer

	// VerifyPassphrase re-derives the key from passphrase and compares it to
	// the session key in constant time.
	VerifyPassphrase(ctx context.Context, passphrase string) error

	// Hint returns the stored passphrase hint, or "" when none is set.
	Hint(ctx context.Context) (string, error)

	// SetHint stores hint; an empty hint removes the slot.
	SetHint(ctx context.Context, hint string) error
}

// EntryRepository is the unlocked journal. All methods return
// [ErrNotUnlocked] while the session is locked.
type EntryRepository interface {
	// Create appends an empty entry with the default mood and makes it
	// active.
	Create(ctx context.Context) (models.JournalEntry, error)

	// Update applies patch to the entry with id and refreshes UpdatedAt and
	// WordCount.
	Update(ctx context.Context, id string, patch models.EntryPatch) (models.JournalEntry, error)

	// Delete removes the entry with id; deleting the active entry clears the
	// selection.
	Delete(ctx context.Context, id string) error

	// Replace swaps the whole collection. Entries are expected to be
	// validated by the caller.
	Replace(ctx context.Context, entries []models.JournalEntry) error

	Get(id string) (models.JournalEntry, error)

	// List returns the entries ordered by UpdatedAt, newest first.
	List() ([]models.JournalEntry, error)

	// Search filters List by query.
	Search(query models.SearchQuery) ([]models.JournalEntry, error)

	// Active returns the selected entry; ok is false when none is selected.
	Active() (entry models.JournalEntry, ok bool, err error)
	Select(id string) error

	// Tags returns every distinct tag in use, sorted.
	Tags() ([]string, error)

	Stats(id string) (models.EntryStats, error)

	// Flush writes any unsaved changes now.
	Flush(ctx context.Context) error

	// SaveErr returns the error of the last failed save, or nil once a save
	// has succeeded.
	SaveErr() error

	// SavePending reports whether a change is waiting for its debounced save.
	SavePending() bool
}

// TransferService moves the journal in and out as a plaintext document.
type TransferService interface {
	// Export writes every entry to w. It requires the session passphrase to
	// be re-entered and returns the number of exported entries.
	Export(ctx context.Context, passphrase string, w io.Writer, format models.ExportFormat) (int, error)

	// Import replaces the journal with the document read from r. It is all or
	// nothing: any invalid record fails the import with [ErrParseFailure]
	// and leaves the journal untouched.
	Import(ctx context.Context, r io.Reader, format models.ExportFormat) (int, error)
}
