package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-mood-journal/internal/app"
	"github.com/MKhiriev/go-mood-journal/internal/crypto"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/MKhiriev/go-mood-journal/models"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "auth", err: fmt.Errorf("unlock: %w", crypto.ErrAuthenticationFailed), want: app.MsgIncorrectPassphrase},
		{name: "empty passphrase", err: crypto.ErrEmptyPassphrase, want: app.MsgEmptyPassphrase},
		{name: "malformed", err: crypto.ErrMalformedBlob, want: app.MsgDataIntegrityFailure},
		{name: "parse", err: fmt.Errorf("%w: entry 3", ErrParseFailure), want: app.MsgInvalidImport},
		{name: "locked", err: ErrNotUnlocked, want: app.MsgJournalLocked},
		{name: "already", err: ErrAlreadyUnlocked, want: app.MsgAlreadyUnlocked},
		{name: "not found", err: ErrEntryNotFound, want: app.MsgEntryNotFound},
		{name: "format", err: models.ErrUnknownFormat, want: app.MsgUnknownFormat},
		{name: "validation", err: fmt.Errorf("invalid patch: %w", validators.ErrTooManyTags), want: app.MsgInvalidEntry + ": too many tags"},
		{name: "persistence", err: fmt.Errorf("write: %w", store.ErrPersistence), want: app.MsgSaveFailed},
		{name: "other", err: errors.New("boom"), want: app.MsgUnexpectedError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
