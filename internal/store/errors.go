package store

import "errors"

// Sentinel errors returned by the key-value stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSlotNotFound is returned by Get when the requested slot has never
	// been written or was deleted.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrPersistence wraps every failure of the underlying storage medium
	// (database, file system). The in-memory state of callers is left
	// untouched; retrying is the caller's decision.
	ErrPersistence = errors.New("persistence failure")

	// ErrUnknownDriver is returned when the configured storage driver is not
	// supported.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are wrapped together with
// [ErrPersistence] by the SQLite store.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
