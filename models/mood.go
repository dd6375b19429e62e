// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mood identifies one of the fixed moods an entry can be tagged with.
// The zero value is not a valid mood; use [DefaultMood] for new entries.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodCalm      Mood = "calm"
	MoodMeh       Mood = "meh"
	MoodSad       Mood = "sad"
	MoodAngry     Mood = "angry"
	MoodAnxious   Mood = "anxious"
	MoodConfident Mood = "confident"
)

// DefaultMood is assigned to freshly created entries.
const DefaultMood = MoodMeh

// MoodInfo carries the display attributes of a [Mood].
type MoodInfo struct {
	ID    Mood   `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Emoji string `json:"emoji" yaml:"emoji"`
	Color string `json:"color" yaml:"color"`
}

var moods = []MoodInfo{
	{ID: MoodHappy, Label: "Happy", Emoji: "😊", Color: "gold"},
	{ID: MoodCalm, Label: "Calm", Emoji: "😌", Color: "skyblue"},
	{ID: MoodMeh, Label: "Meh", Emoji: "😐", Color: "grey"},
	{ID: MoodSad, Label: "Sad", Emoji: "😔", Color: "cornflowerblue"},
	{ID: MoodAngry, Label: "Angry", Emoji: "😡", Color: "red"},
	{ID: MoodAnxious, Label: "Anxious", Emoji: "😰", Color: "purple"},
	{ID: MoodConfident, Label: "Confident", Emoji: "😎", Color: "seagreen"},
}

// Moods returns every supported mood in display order.
func Moods() []MoodInfo {
	out := make([]MoodInfo, len(moods))
	copy(out, moods)
	return out
}

// ParseMood resolves s (case-insensitive, surrounding spaces ignored) to a
// known mood.
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMood, s)
	}
	return m, nil
}

// IsValid reports whether m is one of the supported moods.
func (m Mood) IsValid() bool {
	_, ok := m.Info()
	return ok
}

// Info returns the display attributes of m.
func (m Mood) Info() (MoodInfo, bool) {
	for _, info := range moods {
		if info.ID == m {
			return info, true
		}
	}
	return MoodInfo{}, false
}

// Label returns the human readable label, falling back to the default mood
// for unknown values.
func (m Mood) Label() string {
	if info, ok := m.Info(); ok {
		return info.Label
	}
	info, _ := DefaultMood.Info()
	return info.Label
}

// Emoji returns the emoji of m, falling back to the default mood.
func (m Mood) Emoji() string {
	if info, ok := m.Info(); ok {
		return info.Emoji
	}
	info, _ := DefaultMood.Info()
	return info.Emoji
}

// Color returns the display color name of m, falling back to the default mood.
func (m Mood) Color() string {
	if info, ok := m.Info(); ok {
		return info.Color
	}
	info, _ := DefaultMood.Info()
	return info.Color
}

func (m Mood) String() string {
	return string(m)
}

// UnmarshalJSON accepts either the mood id (`"calm"`) or the object form
// written by older journal versions (`{"id":"calm","label":"Calm",...}`).
func (m *Mood) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err != nil {
		var obj struct {
			ID string `json:"id"`
		}
		if objErr := json.Unmarshal(b, &obj); objErr != nil {
			return fmt.Errorf("%w: %s", ErrUnknownMood, string(b))
		}
		id = obj.ID
	}

	parsed, err := ParseMood(id)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// UnmarshalYAML mirrors [Mood.UnmarshalJSON] for YAML documents.
func (m *Mood) UnmarshalYAML(value *yaml.Node) error {
	var id string
	switch value.Kind {
	case yaml.ScalarNode:
		id = value.Value
	case yaml.MappingNode:
		var obj struct {
			ID string `yaml:"id"`
		}
		if err := value.Decode(&obj); err != nil {
			return fmt.Errorf("%w: %v", ErrUnknownMood, err)
		}
		id = obj.ID
	default:
		return fmt.Errorf("%w: unexpected yaml node", ErrUnknownMood)
	}

	parsed, err := ParseMood(id)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
