package models

import "errors"

var (
	// ErrUnknownMood is returned when a mood id does not match any of the
	// supported moods.
	ErrUnknownMood = errors.New("unknown mood")

	// ErrUnknownFormat is returned for an export format other than JSON or
	// YAML.
	ErrUnknownFormat = errors.New("unknown export format")
)
