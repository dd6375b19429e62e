package service

import "errors"

var (
	ErrNotUnlocked     = errors.New("journal is locked")
	ErrAlreadyUnlocked = errors.New("journal is already unlocked")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrParseFailure    = errors.New("import document is invalid")
)
