package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidLength is returned when a non-positive number of random bytes is
// requested.
var ErrInvalidLength = errors.New("invalid random length")

// RandomSource produces cryptographically random bytes.
type RandomSource interface {
	Read(n int) ([]byte, error)
}

// ReaderRandom adapts an io.Reader (crypto/rand.Reader by default) to
// [RandomSource].
type ReaderRandom struct {
	r io.Reader
}

// NewCryptoRandom returns a [RandomSource] reading from the OS CSPRNG.
func NewCryptoRandom() *ReaderRandom {
	return &ReaderRandom{r: rand.Reader}
}

// NewReaderRandom returns a [RandomSource] reading from r. Tests use it with
// deterministic readers.
func NewReaderRandom(r io.Reader) *ReaderRandom {
	return &ReaderRandom{r: r}
}

// Read returns exactly n bytes or an error.
func (s *ReaderRandom) Read(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return buf, nil
}
