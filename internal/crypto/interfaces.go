// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the journal's cryptography: passphrase based key
// derivation and authenticated encryption of the serialized entry collection.
//
// Scheme:
//
//	salt := SaltProvider.GetOrCreateSalt()           (persisted, never regenerated)
//	key  := PBKDF2-SHA256(passphrase, salt, 120000)  (memory only)
//	blob := AES-256-GCM(key, fresh nonce, json)      ("<b64 nonce>.<b64 ciphertext>")
//
// Nothing here logs or persists a passphrase or key.
package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// SaltProvider returns the per-installation key derivation salt.
type SaltProvider interface {
	// GetOrCreateSalt returns the persisted salt, generating and persisting a
	// new one on first use.
	GetOrCreateSalt(ctx context.Context) ([]byte, error)
}

// KeyManager turns a passphrase into key material for [CipherCodec].
type KeyManager interface {
	// DeriveKey runs the slow KDF over passphrase and the persisted salt.
	// The same passphrase and salt always yield the same key.
	DeriveKey(ctx context.Context, passphrase string) ([]byte, error)
}

// CipherCodec seals and opens payloads under a derived key.
type CipherCodec interface {
	// Encrypt seals plaintext with a nonce that is freshly generated on every
	// call.
	Encrypt(plaintext, key []byte) (EncryptedBlob, error)

	// Decrypt opens blob. Any verification failure is reported as
	// [ErrAuthenticationFailed] with no further detail.
	Decrypt(blob EncryptedBlob, key []byte) ([]byte, error)
}
