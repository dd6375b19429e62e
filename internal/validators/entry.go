// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-mood-journal/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets the entry identifier.
	FieldID = "id"

	// FieldContent targets the rich-text content and its size limit.
	FieldContent = "content"

	// FieldMood targets the mood id.
	FieldMood = "mood"

	// FieldTags targets the tag list: count and per-tag length.
	FieldTags = "tags"

	// FieldTimestamps checks that updatedAt is not before createdAt.
	FieldTimestamps = "timestamps"

	// FieldPatchNotEmpty requires an [models.EntryPatch] to change something.
	FieldPatchNotEmpty = "patch_not_empty"

	// FieldRequired requires every field of an [models.ExportRecord] to be
	// present in the source document.
	FieldRequired = "required"
)

// Limits enforced on entries.
const (
	MaxTags         = 32
	MaxTagLength    = 64
	MaxContentBytes = 1 << 20
)

// EntryValidator validates journal entries, entry patches and import records.
type EntryValidator struct{}

// NewEntryValidator returns the journal entry [Validator].
func NewEntryValidator() Validator {
	return &EntryValidator{}
}

// Validate dispatches on the dynamic type of obj. With no fields every rule
// that applies to the type is checked.
func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.JournalEntry:
		return v.validateEntry(ctx, value, fields...)
	case *models.JournalEntry:
		return v.validateEntry(ctx, *value, fields...)

	case models.EntryPatch:
		return v.validatePatch(ctx, value, fields...)
	case *models.EntryPatch:
		return v.validatePatch(ctx, *value, fields...)

	case models.ExportRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.ExportRecord:
		return v.validateRecord(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateEntry(_ context.Context, e models.JournalEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldContent, FieldMood, FieldTags, FieldTimestamps}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(e.ID) == "" {
				return ErrEmptyID
			}
		case FieldContent:
			if err := checkContent(e.Content); err != nil {
				return err
			}
		case FieldMood:
			if !e.Mood.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidMood, string(e.Mood))
			}
		case FieldTags:
			if err := checkTags(e.Tags); err != nil {
				return err
			}
		case FieldTimestamps:
			if e.UpdatedAt.Before(e.CreatedAt) {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntryValidator) validatePatch(_ context.Context, p models.EntryPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPatchNotEmpty, FieldContent, FieldMood, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldPatchNotEmpty:
			if p.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldContent:
			if p.Content != nil {
				if err := checkContent(*p.Content); err != nil {
					return err
				}
			}
		case FieldMood:
			if p.Mood != nil && !p.Mood.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidMood, string(*p.Mood))
			}
		case FieldTags:
			if p.Tags != nil {
				if err := checkTags(*p.Tags); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateRecord checks presence of every field first and then validates the
// record as the entry it will become.
func (v *EntryValidator) validateRecord(ctx context.Context, r models.ExportRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldID, FieldContent, FieldMood, FieldTags, FieldTimestamps}
	}

	entryFields := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == FieldRequired {
			if err := checkRequired(r); err != nil {
				return err
			}
			continue
		}
		entryFields = append(entryFields, f)
	}
	if len(entryFields) == 0 {
		return nil
	}

	return v.validateEntry(ctx, recordToEntry(r), entryFields...)
}

func checkRequired(r models.ExportRecord) error {
	_, hasContent := r.ContentValue()

	switch {
	case r.ID == nil:
		return fmt.Errorf("%w: id", ErrMissingField)
	case !hasContent:
		return fmt.Errorf("%w: content", ErrMissingField)
	case r.Mood == nil:
		return fmt.Errorf("%w: mood", ErrMissingField)
	case r.Tags == nil:
		return fmt.Errorf("%w: tags", ErrMissingField)
	case r.CreatedAt == nil:
		return fmt.Errorf("%w: createdAt", ErrMissingField)
	case r.UpdatedAt == nil:
		return fmt.Errorf("%w: updatedAt", ErrMissingField)
	}
	return nil
}

func recordToEntry(r models.ExportRecord) models.JournalEntry {
	var e models.JournalEntry
	if r.ID != nil {
		e.ID = *r.ID
	}
	e.Content, _ = r.ContentValue()
	if r.Mood != nil {
		e.Mood = *r.Mood
	}
	if r.Tags != nil {
		e.Tags = *r.Tags
	}
	if r.CreatedAt != nil {
		e.CreatedAt = *r.CreatedAt
	}
	if r.UpdatedAt != nil {
		e.UpdatedAt = *r.UpdatedAt
	}
	return e
}

func checkContent(content string) error {
	if len(content) > MaxContentBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrContentTooLarge, len(content), MaxContentBytes)
	}
	return nil
}

// checkTags validates tags as they will be stored: blanks are dropped and
// duplicates collapsed before the limits apply.
func checkTags(tags []string) error {
	tags = models.NormalizeTags(tags)
	if len(tags) > MaxTags {
		return fmt.Errorf("%w: %d, limit %d", ErrTooManyTags, len(tags), MaxTags)
	}
	for _, t := range tags {
		if utf8.RuneCountInString(t) > MaxTagLength {
			return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidTag, t, MaxTagLength)
		}
	}
	return nil
}
