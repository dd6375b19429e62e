// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-mood-journal terminal UI and command line.
//
// All Msg* constants are human-readable message strings shown to the user to
// describe the outcome of an operation. Keeping them in one place ensures
// consistent wording between the TUI and the CLI.
package app

const (
	// MsgIncorrectPassphrase is shown for every decryption failure. It never
	// distinguishes a wrong passphrase from tampered data.
	MsgIncorrectPassphrase = "incorrect passphrase"

	// MsgEmptyPassphrase is shown when the passphrase field is blank.
	MsgEmptyPassphrase = "passphrase must not be empty"

	// MsgDataIntegrityFailure is shown when the stored journal or salt is
	// structurally damaged.
	MsgDataIntegrityFailure = "stored journal is damaged and can not be read"

	// MsgJournalLocked is shown when an entry operation is attempted while
	// locked.
	MsgJournalLocked = "journal is locked"

	// MsgAlreadyUnlocked is shown when unlocking an open journal.
	MsgAlreadyUnlocked = "journal is already unlocked"

	// MsgEntryNotFound is shown when the selected entry no longer exists.
	MsgEntryNotFound = "entry not found"

	// MsgInvalidImport is shown when an import document is rejected. The
	// journal is left unchanged.
	MsgInvalidImport = "import file is invalid; nothing was changed"

	// MsgInvalidEntry is shown when an edit breaks an entry rule (tag count,
	// tag length, content size).
	MsgInvalidEntry = "entry is invalid"

	// MsgSaveFailed is shown when the encrypted journal could not be written.
	MsgSaveFailed = "could not save journal"

	// MsgUnknownFormat is shown for an export format other than json or yaml.
	MsgUnknownFormat = "unknown format, use json or yaml"

	// MsgUnexpectedError is the fallback for anything else.
	MsgUnexpectedError = "unexpected error"

	// MsgExportWarning is displayed before writing a plaintext export.
	MsgExportWarning = "The export is NOT encrypted. Anyone with the file can read your journal."
)
