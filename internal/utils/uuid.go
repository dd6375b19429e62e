package utils

import "github.com/google/uuid"

// IDGenerator produces unique entry identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator issues UUIDv7 ids, which sort by creation time. If the
// random source fails it falls back to a v4 id.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
