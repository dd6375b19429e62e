// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-mood-journal/internal/app"
	"github.com/MKhiriev/go-mood-journal/internal/crypto"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/MKhiriev/go-mood-journal/models"
)

// UserMessage translates a service error into the message shown to the
// user. Authentication failures are always reported as an incorrect
// passphrase.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, crypto.ErrAuthenticationFailed):
		return app.MsgIncorrectPassphrase
	case errors.Is(err, crypto.ErrEmptyPassphrase):
		return app.MsgEmptyPassphrase
	case errors.Is(err, crypto.ErrMalformedBlob):
		return app.MsgDataIntegrityFailure
	case errors.Is(err, ErrParseFailure):
		return app.MsgInvalidImport
	case errors.Is(err, ErrNotUnlocked):
		return app.MsgJournalLocked
	case errors.Is(err, ErrAlreadyUnlocked):
		return app.MsgAlreadyUnlocked
	case errors.Is(err, ErrEntryNotFound):
		return app.MsgEntryNotFound
	case errors.Is(err, models.ErrUnknownFormat):
		return app.MsgUnknownFormat
	case validationCause(err) != nil:
		return app.MsgInvalidEntry + ": " + validationCause(err).Error()
	case errors.Is(err, store.ErrPersistence):
		return app.MsgSaveFailed
	}
	return app.MsgUnexpectedError
}

// validationCause returns the validators sentinel err wraps, if any.
func validationCause(err error) error {
	for _, target := range []error{
		validators.ErrTooManyTags,
		validators.ErrInvalidTag,
		validators.ErrContentTooLarge,
		validators.ErrInvalidMood,
		validators.ErrNoFieldsToUpdate,
	} {
		if errors.Is(err, target) {
			return target
		}
	}
	return nil
}
