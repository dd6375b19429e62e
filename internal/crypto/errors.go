package crypto

import "errors"

// Sentinel errors returned by the crypto package. Callers match them with
// [errors.Is].
var (
	// ErrAuthenticationFailed is returned when a blob fails AEAD verification.
	// A wrong passphrase and a tampered blob are deliberately
	// indistinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrMalformedBlob is returned when persisted data does not have the
	// expected structure (blob text or salt encoding).
	ErrMalformedBlob = errors.New("malformed encrypted blob")

	// ErrEmptyPassphrase is returned when key derivation is requested for an
	// empty passphrase.
	ErrEmptyPassphrase = errors.New("passphrase is empty")

	// ErrInvalidKeyLength is returned when a key is not [KeyLength] bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")
)
