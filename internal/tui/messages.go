package tui

import (
	"github.com/MKhiriev/go-mood-journal/models"
)

type hintLoadedMsg struct {
	hint string
	err  error
}

type unlockedMsg struct {
	err error
}

type lockedMsg struct {
	err error
}

type entriesLoadedMsg struct {
	items       []models.JournalEntry
	tags        []string
	saveErr     error
	savePending bool
	err         error
}

type entryCreatedMsg struct {
	entry models.JournalEntry
	err   error
}

type entrySavedMsg struct {
	entry models.JournalEntry
	leave bool
	err   error
}

type entryDeletedMsg struct {
	err error
}

type exportedMsg struct {
	count int
	path  string
	err   error
}

type importedMsg struct {
	count int
	err   error
}

type hintSavedMsg struct {
	err error
}

type errMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
