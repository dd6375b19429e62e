// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/sha256"
	"fmt"
	"runtime"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// DefaultIterations is the PBKDF2 iteration count used for new and existing
// journals. Lowering it would make every stored blob undecryptable.
const DefaultIterations = 120_000

// pbkdf2KeyManager is the PBKDF2-HMAC-SHA256 implementation of [KeyManager].
type pbkdf2KeyManager struct {
	salts      SaltProvider
	iterations int
}

// NewKeyManager returns a [KeyManager] deriving 256-bit keys with PBKDF2 over
// the salt supplied by salts. iterations below [DefaultIterations] are raised
// to it.
func NewKeyManager(salts SaltProvider, iterations int) KeyManager {
	if iterations < DefaultIterations {
		iterations = DefaultIterations
	}
	return &pbkdf2KeyManager{salts: salts, iterations: iterations}
}

// DeriveKey implements [KeyManager]. The passphrase is NFC-normalized first so
// visually identical input typed on different keyboards derives the same key.
func (k *pbkdf2KeyManager) DeriveKey(ctx context.Context, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	salt, err := k.salts.GetOrCreateSalt(ctx)
	if err != nil {
		return nil, fmt.Errorf("get salt: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	secret := []byte(norm.NFC.String(passphrase))
	defer SecureWipe(secret)

	return pbkdf2.Key(secret, salt, k.iterations, KeyLength, sha256.New), nil
}

// SecureWipe overwrites b with zeros in a way the compiler can not elide.
func SecureWipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
