// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/MKhiriev/go-mood-journal/internal/utils"
)

const (
	// KeyLength is the AES-256 key size in bytes.
	KeyLength = 32

	// NonceLength is the GCM nonce size in bytes.
	NonceLength = 12
)

// aesGCMCodec is the AES-256-GCM implementation of [CipherCodec].
type aesGCMCodec struct {
	random utils.RandomSource
}

// NewCipherCodec returns an AES-256-GCM [CipherCodec] drawing nonces from
// random.
func NewCipherCodec(random utils.RandomSource) CipherCodec {
	return &aesGCMCodec{random: random}
}

// Encrypt implements [CipherCodec].
func (c *aesGCMCodec) Encrypt(plaintext, key []byte) (EncryptedBlob, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return EncryptedBlob{}, err
	}

	nonce, err := c.random.Read(NonceLength)
	if err != nil {
		return EncryptedBlob{}, fmt.Errorf("generate nonce: %w", err)
	}

	return EncryptedBlob{
		Nonce:      nonce,
		Ciphertext: gcm.Seal(nil, nonce, plaintext, nil),
	}, nil
}

// Decrypt implements [CipherCodec].
func (c *aesGCMCodec) Decrypt(blob EncryptedBlob, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(blob.Nonce) != NonceLength || len(blob.Ciphertext) < gcm.Overhead() {
		return nil, fmt.Errorf("%w: unexpected blob sizes", ErrMalformedBlob)
	}

	plaintext, err := gcm.Open(nil, blob.Nonce, blob.Ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeyLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
