// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// blobSeparator joins the nonce and ciphertext parts of the blob text.
const blobSeparator = "."

// EncryptedBlob is the only persisted form of the entry collection.
// Ciphertext carries the GCM tag at its end.
type EncryptedBlob struct {
	Nonce      []byte
	Ciphertext []byte
}

// String encodes the blob as "<base64 nonce>.<base64 ciphertext>".
func (b EncryptedBlob) String() string {
	return base64.StdEncoding.EncodeToString(b.Nonce) +
		blobSeparator +
		base64.StdEncoding.EncodeToString(b.Ciphertext)
}

// ParseEncryptedBlob decodes text produced by [EncryptedBlob.String]. Text
// that does not split into exactly two non-empty base64 parts, or whose nonce
// has the wrong size, is reported as [ErrMalformedBlob].
func ParseEncryptedBlob(text string) (EncryptedBlob, error) {
	parts := strings.Split(strings.TrimSpace(text), blobSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return EncryptedBlob{}, fmt.Errorf("%w: expected 2 parts, got %d", ErrMalformedBlob, len(parts))
	}

	nonce, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return EncryptedBlob{}, fmt.Errorf("%w: decode nonce: %v", ErrMalformedBlob, err)
	}
	if len(nonce) != NonceLength {
		return EncryptedBlob{}, fmt.Errorf("%w: nonce length %d", ErrMalformedBlob, len(nonce))
	}

	ciphertext, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return EncryptedBlob{}, fmt.Errorf("%w: decode ciphertext: %v", ErrMalformedBlob, err)
	}

	return EncryptedBlob{Nonce: nonce, Ciphertext: ciphertext}, nil
}
