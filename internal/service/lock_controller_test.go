// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mood-journal/internal/crypto"
	"github.com/MKhiriev/go-mood-journal/internal/mock"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/internal/utils"
	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/MKhiriev/go-mood-journal/models"
)

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, crypto.KeyLength)
}

func newMockedLockController(t *testing.T) (
	*lockController,
	*mock.MockKeyManager,
	*mock.MockEntrySession,
	store.KeyValueStore,
	crypto.CipherCodec,
) {
	t.Helper()
	ctrl := gomock.NewController(t)
	keys := mock.NewMockKeyManager(ctrl)
	session := mock.NewMockEntrySession(ctrl)
	slots := store.NewMemoryStore()
	codec := crypto.NewCipherCodec(utils.NewCryptoRandom())

	return newLockController(keys, codec, slots, session, newSessionKey(codec)), keys, session, slots, codec
}

func storeEntries(t *testing.T, slots store.KeyValueStore, codec crypto.CipherCodec, key []byte, payload string) {
	t.Helper()
	blob, err := codec.Encrypt([]byte(payload), key)
	require.NoError(t, err)
	require.NoError(t, slots.Set(context.Background(), store.SlotEntries, blob.String()))
}

// ─────────────────────────────────────────────
// Unlock
// ─────────────────────────────────────────────

func TestLockController_StartsLocked(t *testing.T) {
	c, _, _, _, _ := newMockedLockController(t)

	assert.True(t, c.IsLocked())
	_, err := c.Seal([]byte("x"))
	assert.ErrorIs(t, err, ErrNotUnlocked)
}

func TestLockController_Unlock_EmptyJournal(t *testing.T) {
	c, keys, session, _, _ := newMockedLockController(t)
	ctx := testCtx()

	keys.EXPECT().DeriveKey(ctx, "pw").Return(testKey(1), nil)
	session.EXPECT().Open([]models.JournalEntry{})

	require.NoError(t, c.Unlock(ctx, "pw"))
	assert.False(t, c.IsLocked())
}

func TestLockController_Unlock_DecryptsStoredEntries(t *testing.T) {
	c, keys, session, slots, codec := newMockedLockController(t)
	ctx := testCtx()
	storeEntries(t, slots, codec, testKey(1),
		`[{"id":"a","content":"<p>two words</p>","mood":{"id":"sad","label":"Sad"},"tags":["x"," x ",""],"createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-02T00:00:00Z","wordCount":99}]`)

	keys.EXPECT().DeriveKey(ctx, "pw").Return(testKey(1), nil)
	session.EXPECT().Open(gomock.Any()).Do(func(entries []models.JournalEntry) {
		require.Len(t, entries, 1)
		assert.Equal(t, "a", entries[0].ID)
		assert.Equal(t, models.MoodSad, entries[0].Mood)
		assert.Equal(t, []string{"x"}, entries[0].Tags)
		assert.Equal(t, 2, entries[0].WordCount)
	})

	require.NoError(t, c.Unlock(ctx, "pw"))
}

func TestLockController_Unlock_ReadsLegacyHTMLField(t *testing.T) {
	c, keys, session, slots, codec := newMockedLockController(t)
	ctx := testCtx()
	storeEntries(t, slots, codec, testKey(1),
		`[{"id":"old","html":"<p>written before the rename</p>","mood":{"id":"calm","label":"Calm"},"tags":[],"createdAt":"2025-05-01T08:00:00Z","updatedAt":"2025-05-01T08:00:00Z","wordCount":4}]`)

	keys.EXPECT().DeriveKey(ctx, "pw").Return(testKey(1), nil)
	session.EXPECT().Open(gomock.Any()).Do(func(entries []models.JournalEntry) {
		require.Len(t, entries, 1)
		assert.Equal(t, "<p>written before the rename</p>", entries[0].Content)
		assert.Equal(t, 4, entries[0].WordCount)
		assert.Equal(t, models.MoodCalm, entries[0].Mood)
	})

	require.NoError(t, c.Unlock(ctx, "pw"))
}

func TestLockController_Unlock_UnknownMoodFallsBack(t *testing.T) {
	c, keys, session, slots, codec := newMockedLockController(t)
	ctx := testCtx()
	storeEntries(t, slots, codec, testKey(1),
		`[{"id":"a","content":"<p>one</p>","mood":"ecstatic","tags":[],"createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"},`+
			`{"id":"b","content":"<p>two</p>","tags":[],"createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"},`+
			`{"id":"c","content":"<p>three</p>","mood":"angry","tags":[],"createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}]`)

	keys.EXPECT().DeriveKey(ctx, "pw").Return(testKey(1), nil)
	session.EXPECT().Open(gomock.Any()).Do(func(entries []models.JournalEntry) {
		require.Len(t, entries, 3)
		assert.Equal(t, models.DefaultMood, entries[0].Mood)
		assert.Equal(t, "<p>one</p>", entries[0].Content)
		assert.Equal(t, models.DefaultMood, entries[1].Mood)
		assert.Equal(t, models.MoodAngry, entries[2].Mood)
	})

	require.NoError(t, c.Unlock(ctx, "pw"))
	assert.False(t, c.IsLocked())
}

func TestLockController_Unlock_WrongPassphrase(t *testing.T) {
	c, keys, _, slots, codec := newMockedLockController(t)
	ctx := testCtx()
	storeEntries(t, slots, codec, testKey(1), `[]`)

	// no Open expected: the session must stay closed
	keys.EXPECT().DeriveKey(ctx, "wrong").Return(testKey(2), nil)

	err := c.Unlock(ctx, "wrong")
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
	assert.NotErrorIs(t, err, crypto.ErrMalformedBlob)
	assert.True(t, c.IsLocked())
}

func TestLockController_Unlock_MalformedBlob(t *testing.T) {
	c, keys, _, slots, _ := newMockedLockController(t)
	ctx := testCtx()
	require.NoError(t, slots.Set(ctx, store.SlotEntries, "not-a-blob"))

	keys.EXPECT().DeriveKey(ctx, "pw").Return(testKey(1), nil)

	err := c.Unlock(ctx, "pw")
	assert.ErrorIs(t, err, crypto.ErrMalformedBlob)
	assert.NotErrorIs(t, err, crypto.ErrAuthenticationFailed)
	assert.True(t, c.IsLocked())
}

func TestLockController_Unlock_UndecodablePlaintext(t *testing.T) {
	c, keys, _, slots, codec := newMockedLockController(t)
	ctx := testCtx()
	storeEntries(t, slots, codec, testKey(1), `{"not":"an array"}`)

	keys.EXPECT().DeriveKey(ctx, "pw").Return(testKey(1), nil)

	assert.ErrorIs(t, c.Unlock(ctx, "pw"), crypto.ErrMalformedBlob)
	assert.True(t, c.IsLocked())
}

func TestLockController_Unlock_DeriveError(t *testing.T) {
	c, keys, _, _, _ := newMockedLockController(t)
	ctx := testCtx()

	keys.EXPECT().DeriveKey(ctx, "").Return(nil, crypto.ErrEmptyPassphrase)

	assert.ErrorIs(t, c.Unlock(ctx, ""), crypto.ErrEmptyPassphrase)
	assert.True(t, c.IsLocked())
}

func TestLockController_Unlock_Twice(t *testing.T) {
	c, keys, session, _, _ := newMockedLockController(t)
	ctx := testCtx()

	keys.EXPECT().DeriveKey(ctx, "pw").Return(testKey(1), nil).Times(1)
	session.EXPECT().Open(gomock.Any()).Times(1)

	require.NoError(t, c.Unlock(ctx, "pw"))
	assert.ErrorIs(t, c.Unlock(ctx, "pw"), ErrAlreadyUnlocked)
}

// ─────────────────────────────────────────────
// Lock
// ─────────────────────────────────────────────

func TestLockController_Lock_FlushesThenCloses(t *testing.T) {
	c, keys, session, _, _ := newMockedLockController(t)
	ctx := testCtx()

	keys.EXPECT().DeriveKey(ctx, "pw").Return(testKey(1), nil)
	gomock.InOrder(
		session.EXPECT().Open(gomock.Any()),
		session.EXPECT().Flush(ctx).Return(nil),
		session.EXPECT().Close(),
	)

	require.NoError(t, c.Unlock(ctx, "pw"))
	require.NoError(t, c.Lock(ctx))

	assert.True(t, c.IsLocked())
	_, err := c.Seal([]byte("x"))
	assert.ErrorIs(t, err, ErrNotUnlocked)
}

func TestLockController_Lock_FlushFailureKeepsUnlocked(t *testing.T) {
	c, keys, session, _, _ := newMockedLockController(t)
	ctx := testCtx()

	keys.EXPECT().DeriveKey(ctx, "pw").Return(testKey(1), nil)
	session.EXPECT().Open(gomock.Any())
	session.EXPECT().Flush(ctx).Return(errDiskFull)
	// Close must not be called

	require.NoError(t, c.Unlock(ctx, "pw"))

	err := c.Lock(ctx)
	assert.ErrorIs(t, err, errDiskFull)
	assert.False(t, c.IsLocked())

	_, err = c.Seal([]byte("still usable"))
	assert.NoError(t, err)
}

func TestLockController_Lock_WhenLockedIsNoop(t *testing.T) {
	c, _, _, _, _ := newMockedLockController(t)
	assert.NoError(t, c.Lock(testCtx()))
}

// ─────────────────────────────────────────────
// VerifyPassphrase
// ─────────────────────────────────────────────

func TestLockController_VerifyPassphrase(t *testing.T) {
	c, keys, session, _, _ := newMockedLockController(t)
	ctx := testCtx()

	assert.ErrorIs(t, c.VerifyPassphrase(ctx, "pw"), ErrNotUnlocked)

	keys.EXPECT().DeriveKey(ctx, "pw").Return(testKey(1), nil).Times(2)
	keys.EXPECT().DeriveKey(ctx, "other").Return(testKey(9), nil)
	session.EXPECT().Open(gomock.Any())

	require.NoError(t, c.Unlock(ctx, "pw"))
	assert.NoError(t, c.VerifyPassphrase(ctx, "pw"))
	assert.ErrorIs(t, c.VerifyPassphrase(ctx, "other"), crypto.ErrAuthenticationFailed)
}

// ─────────────────────────────────────────────
// Hint
// ─────────────────────────────────────────────

func TestLockController_Hint(t *testing.T) {
	c, _, _, slots, _ := newMockedLockController(t)
	ctx := testCtx()

	hint, err := c.Hint(ctx)
	require.NoError(t, err)
	assert.Empty(t, hint)

	require.NoError(t, c.SetHint(ctx, "  first pet  "))
	hint, err = c.Hint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first pet", hint)

	require.NoError(t, c.SetHint(ctx, ""))
	_, err = slots.Get(ctx, store.SlotHint)
	assert.ErrorIs(t, err, store.ErrSlotNotFound)
}

func TestLockController_Hint_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	slots := mock.NewMockKeyValueStore(ctrl)
	codec := crypto.NewCipherCodec(utils.NewCryptoRandom())
	c := NewLockController(mock.NewMockKeyManager(ctrl), codec, slots, mock.NewMockEntrySession(ctrl))

	slots.EXPECT().Get(gomock.Any(), store.SlotHint).Return("", errors.New("io"))

	_, err := c.Hint(testCtx())
	assert.Error(t, err)
}

// ─────────────────────────────────────────────
// full stack
// ─────────────────────────────────────────────

func TestJournal_UnlockRoundTripAcrossRestart(t *testing.T) {
	slots := newCountingStore()
	j := newTestJournal(t, slots, 0)
	ctx := testCtx()

	j.unlock(t)
	e, err := j.Entries.Create(ctx)
	require.NoError(t, err)
	_, err = j.Entries.Update(ctx, e.ID, models.EntryPatch{Content: ptr("<p>hello there</p>"), Tags: ptr([]string{"work"})})
	require.NoError(t, err)
	require.NoError(t, j.Lock.Lock(ctx))

	// a fresh session over the same slots
	j2 := newTestJournal(t, slots, 0)
	assert.ErrorIs(t, j2.Lock.Unlock(ctx, "wrong"), crypto.ErrAuthenticationFailed)

	j2.unlock(t)
	got, err := j2.Entries.Get(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "<p>hello there</p>", got.Content)
	assert.Equal(t, []string{"work"}, got.Tags)
	assert.Equal(t, 2, got.WordCount)
}

func TestJournal_EntriesRefusedWhileLocked(t *testing.T) {
	j := newTestJournal(t, nil, 0)
	ctx := testCtx()

	_, err := j.Entries.Create(ctx)
	assert.ErrorIs(t, err, ErrNotUnlocked)
	_, err = j.Entries.List()
	assert.ErrorIs(t, err, ErrNotUnlocked)

	j.unlock(t)
	_, err = j.Entries.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, j.Lock.Lock(ctx))

	_, err = j.Entries.List()
	assert.ErrorIs(t, err, ErrNotUnlocked)

	_, ok, err := j.Entries.Active()
	assert.ErrorIs(t, err, ErrNotUnlocked)
	assert.False(t, ok)

	empty := models.EntryPatch{}
	_, err = j.Entries.Update(ctx, "any", empty)
	assert.ErrorIs(t, err, ErrNotUnlocked, "locked state wins over patch validation")

	huge := strings.Repeat("x", validators.MaxContentBytes+1)
	_, err = j.Entries.Update(ctx, "any", models.EntryPatch{Content: &huge})
	assert.ErrorIs(t, err, ErrNotUnlocked)
}

func TestJournal_LockPersistsPendingEdit(t *testing.T) {
	j := newTestJournal(t, nil, 0)
	ctx := testCtx()
	j.unlock(t)

	_, err := j.Entries.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, j.slots.count(store.SlotEntries), "nothing written before the quiet period")

	require.NoError(t, j.Lock.Lock(ctx))
	assert.Equal(t, 1, j.slots.count(store.SlotEntries))
}

func TestJournal_LockFailsWhenSaveFails(t *testing.T) {
	j := newTestJournal(t, nil, 0)
	ctx := testCtx()
	j.unlock(t)

	_, err := j.Entries.Create(ctx)
	require.NoError(t, err)

	j.slots.setFail(true)
	err = j.Lock.Lock(ctx)
	require.ErrorIs(t, err, store.ErrPersistence)
	assert.False(t, j.Lock.IsLocked())

	list, err := j.Entries.List()
	require.NoError(t, err)
	assert.Len(t, list, 1, "entries survive a failed lock")

	j.slots.setFail(false)
	require.NoError(t, j.Lock.Lock(ctx))
	assert.True(t, j.Lock.IsLocked())
	assert.Equal(t, 1, j.slots.count(store.SlotEntries))
}
