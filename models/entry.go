// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// JournalEntry is a single decrypted journal record.
//
// Content holds sanitized rich-text markup; only its stripped plain text is
// ever interpreted. WordCount is derived from Content on every mutation and
// is never authoritative on its own.
type JournalEntry struct {
	ID        string    `json:"id" yaml:"id"`
	Content   string    `json:"content" yaml:"content"`
	Mood      Mood      `json:"mood" yaml:"mood"`
	Tags      []string  `json:"tags" yaml:"tags"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
	WordCount int       `json:"wordCount" yaml:"wordCount"`
}

// Clone returns a deep copy of e so callers can not mutate the owner's tags.
func (e JournalEntry) Clone() JournalEntry {
	c := e
	if e.Tags != nil {
		c.Tags = make([]string, len(e.Tags))
		copy(c.Tags, e.Tags)
	}
	return c
}

// HasTag reports whether e carries tag (case-insensitive).
func (e JournalEntry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// EntryPatch is a partial update of a [JournalEntry]. Nil fields are left
// untouched.
type EntryPatch struct {
	Content *string
	Mood    *Mood
	Tags    *[]string
}

// IsEmpty reports whether the patch changes nothing.
func (p EntryPatch) IsEmpty() bool {
	return p.Content == nil && p.Mood == nil && p.Tags == nil
}

// SearchQuery filters the entry collection. Text is matched against plain
// text, mood label and tags; Mood and Tag narrow the result conjunctively.
type SearchQuery struct {
	Text string
	Mood *Mood
	Tag  string
}

// EntryStats describes the size of an entry's plain text.
type EntryStats struct {
	Words       int
	Chars       int
	ReadMinutes int
}

// NormalizeTags trims every tag, drops empty ones and collapses duplicates
// while keeping the order of first occurrence.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
