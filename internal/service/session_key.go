package service

import (
	"crypto/subtle"
	"sync"

	"github.com/MKhiriev/go-mood-journal/internal/crypto"
)

// sessionKey holds the derived key of the unlocked session. It is the
// [Sealer] handed to the repository, so the key itself never leaves it.
type sessionKey struct {
	codec crypto.CipherCodec

	mu  sync.RWMutex
	key []byte
}

func newSessionKey(codec crypto.CipherCodec) *sessionKey {
	return &sessionKey{codec: codec}
}

func (s *sessionKey) Seal(plaintext []byte) (crypto.EncryptedBlob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return crypto.EncryptedBlob{}, ErrNotUnlocked
	}
	return s.codec.Encrypt(plaintext, s.key)
}

// set takes ownership of key.
func (s *sessionKey) set(key []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	crypto.SecureWipe(s.key)
	s.key = key
}

func (s *sessionKey) wipe() {
	s.mu.Lock()
	defer s.mu.Unlock()

	crypto.SecureWipe(s.key)
	s.key = nil
}

func (s *sessionKey) isSet() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key != nil
}

func (s *sessionKey) equal(other []byte) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key != nil && subtle.ConstantTimeCompare(s.key, other) == 1
}
