// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ExportVersion is written into every exported document.
const ExportVersion = 1

// ExportDocument is the portable plaintext representation of the journal.
type ExportDocument struct {
	Version    int            `json:"version" yaml:"version"`
	ExportedAt time.Time      `json:"exportedAt" yaml:"exportedAt"`
	Entries    []ExportRecord `json:"entries" yaml:"entries"`
}

// ExportRecord is one entry of an [ExportDocument].
//
// Fields are pointers so that a decoder can tell a missing field from a zero
// value. HTML is the content field name used by older journal versions and is
// only read on import.
type ExportRecord struct {
	ID        *string    `json:"id" yaml:"id"`
	Content   *string    `json:"content,omitempty" yaml:"content,omitempty"`
	HTML      *string    `json:"html,omitempty" yaml:"html,omitempty"`
	Mood      *Mood      `json:"mood" yaml:"mood"`
	Tags      *[]string  `json:"tags" yaml:"tags"`
	CreatedAt *time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// NewExportRecord converts e into its export form.
func NewExportRecord(e JournalEntry) ExportRecord {
	c := e.Clone()
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return ExportRecord{
		ID:        &c.ID,
		Content:   &c.Content,
		Mood:      &c.Mood,
		Tags:      &c.Tags,
		CreatedAt: &c.CreatedAt,
		UpdatedAt: &c.UpdatedAt,
	}
}

// ContentValue returns Content, falling back to the legacy HTML field.
func (r ExportRecord) ContentValue() (string, bool) {
	if r.Content != nil {
		return *r.Content, true
	}
	if r.HTML != nil {
		return *r.HTML, true
	}
	return "", false
}

// ExportFormat selects the encoding of an [ExportDocument].
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatYAML ExportFormat = "yaml"
)

// ParseExportFormat accepts "json", "yaml" and "yml" in any case.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks the format from the file extension of path, falling
// back to JSON.
func FormatFromPath(path string) ExportFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
