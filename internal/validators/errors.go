package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID          = errors.New("entry id is required")
	ErrInvalidMood      = errors.New("invalid mood")
	ErrTooManyTags      = errors.New("too many tags")
	ErrInvalidTag       = errors.New("invalid tag")
	ErrContentTooLarge  = errors.New("content is too large")
	ErrInvalidTimestamp = errors.New("updatedAt is before createdAt")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrMissingField     = errors.New("required field is missing")
)
