package service

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-mood-journal/internal/crypto"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/MKhiriev/go-mood-journal/models"
)

func seedJournal(t *testing.T, j *testJournal) []models.JournalEntry {
	t.Helper()
	ctx := testCtx()

	var out []models.JournalEntry
	for _, c := range []struct {
		content string
		mood    models.Mood
		tags    []string
	}{
		{"<p>first day</p>", models.MoodHappy, []string{"start"}},
		{"<p>rainy</p>", models.MoodSad, []string{}},
	} {
		e, err := j.Entries.Create(ctx)
		require.NoError(t, err)
		content, mood, tags := c.content, c.mood, c.tags
		e, err = j.Entries.Update(ctx, e.ID, models.EntryPatch{Content: &content, Mood: &mood, Tags: &tags})
		require.NoError(t, err)
		out = append(out, e)
		j.clock.Advance(time.Hour)
	}
	return out
}

func TestTransfer_Export_RequiresUnlockedAndPassphrase(t *testing.T) {
	j := newTestJournal(t, nil, 0)
	var buf bytes.Buffer

	_, err := j.Transfer.Export(testCtx(), testPassword, &buf, models.FormatJSON)
	assert.ErrorIs(t, err, ErrNotUnlocked)

	j.unlock(t)
	_, err = j.Transfer.Export(testCtx(), "not it", &buf, models.FormatJSON)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
	assert.Zero(t, buf.Len())
}

func TestTransfer_Export_JSONShape(t *testing.T) {
	j := newTestJournal(t, nil, 0)
	j.unlock(t)
	seedJournal(t, j)

	var buf bytes.Buffer
	n, err := j.Transfer.Export(testCtx(), testPassword, &buf, models.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.EqualValues(t, 1, doc["version"])
	assert.Contains(t, doc, "exportedAt")

	entries := doc["entries"].([]any)
	require.Len(t, entries, 2)
	first := entries[0].(map[string]any)
	for _, field := range []string{"id", "content", "mood", "tags", "createdAt", "updatedAt"} {
		assert.Contains(t, first, field)
	}
	assert.NotContains(t, first, "html")
	assert.Equal(t, "sad", first["mood"])
	assert.Equal(t, []any{}, first["tags"])
}

func TestTransfer_RoundTrip(t *testing.T) {
	for _, format := range []models.ExportFormat{models.FormatJSON, models.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			src := newTestJournal(t, nil, 0)
			src.unlock(t)
			seedJournal(t, src)

			var buf bytes.Buffer
			_, err := src.Transfer.Export(testCtx(), testPassword, &buf, format)
			require.NoError(t, err)

			dst := newTestJournal(t, nil, 0)
			dst.unlock(t)
			n, err := dst.Transfer.Import(testCtx(), &buf, format)
			require.NoError(t, err)
			assert.Equal(t, 2, n)

			want, err := src.Entries.List()
			require.NoError(t, err)
			got, err := dst.Entries.List()
			require.NoError(t, err)
			require.Len(t, got, len(want))
			for i := range want {
				assert.Equal(t, want[i].ID, got[i].ID)
				assert.Equal(t, want[i].Content, got[i].Content)
				assert.Equal(t, want[i].Mood, got[i].Mood)
				assert.Equal(t, want[i].Tags, got[i].Tags)
				assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
				assert.True(t, want[i].UpdatedAt.Equal(got[i].UpdatedAt))
				assert.Equal(t, want[i].WordCount, got[i].WordCount)
			}
		})
	}
}

func TestTransfer_Import_LegacyArray(t *testing.T) {
	j := newTestJournal(t, nil, 0)
	j.unlock(t)

	doc := `[
	  {"id":"old-1","html":"<p>from the old page</p>","mood":{"id":"calm","label":"Calm","emoji":"😌","color":"skyblue"},
	   "tags":["legacy"],"createdAt":"2025-01-01T10:00:00Z","updatedAt":"2025-01-01T11:00:00Z","wordCount":999}
	]`

	n, err := j.Transfer.Import(testCtx(), strings.NewReader(doc), models.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	e, err := j.Entries.Get("old-1")
	require.NoError(t, err)
	assert.Equal(t, "<p>from the old page</p>", e.Content)
	assert.Equal(t, models.MoodCalm, e.Mood)
	assert.Equal(t, 4, e.WordCount, "word count is recomputed")
}

func TestTransfer_Import_NormalizesTagsBeforeLimits(t *testing.T) {
	j := newTestJournal(t, nil, 0)
	j.unlock(t)

	tags := []string{"", " "}
	for i := 0; i < validators.MaxTags+5; i++ {
		tags = append(tags, "same")
	}
	tags = append(tags, "other")
	tagsJSON, err := json.Marshal(tags)
	require.NoError(t, err)

	doc := `[{"id":"t","content":"<p>x</p>","mood":"calm","tags":` + string(tagsJSON) +
		`,"createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}]`

	n, err := j.Transfer.Import(testCtx(), strings.NewReader(doc), models.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	e, err := j.Entries.Get("t")
	require.NoError(t, err)
	assert.Equal(t, []string{"same", "other"}, e.Tags)
}

func TestTransfer_Import_YAMLDocument(t *testing.T) {
	j := newTestJournal(t, nil, 0)
	j.unlock(t)

	doc := `
version: 1
entries:
  - id: y-1
    content: "<p>yaml works</p>"
    mood: confident
    tags: [a, b]
    createdAt: 2026-02-01T09:00:00Z
    updatedAt: 2026-02-01T09:30:00Z
`
	n, err := j.Transfer.Import(testCtx(), strings.NewReader(doc), models.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	e, err := j.Entries.Get("y-1")
	require.NoError(t, err)
	assert.Equal(t, models.MoodConfident, e.Mood)
	assert.Equal(t, []string{"a", "b"}, e.Tags)
}

func TestTransfer_Import_RejectsAndKeepsState(t *testing.T) {
	valid := `{"id":"%s","content":"c","mood":"calm","tags":[],"createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}`
	rec := func(id string) string { return strings.Replace(valid, "%s", id, 1) }

	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty", doc: "  "},
		{name: "not json", doc: "{"},
		{name: "scalar", doc: `"entries"`},
		{name: "no entries field", doc: `{"version":1}`},
		{name: "future version", doc: `{"version":2,"entries":[]}`},
		{name: "missing field", doc: `[{"id":"x","content":"c","mood":"calm","tags":[],"createdAt":"2026-01-01T00:00:00Z"}]`},
		{name: "unknown mood", doc: `[{"id":"x","content":"c","mood":"elated","tags":[],"createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}]`},
		{name: "duplicate ids", doc: "[" + rec("d") + "," + rec("d") + "]"},
		{name: "one bad among good", doc: "[" + rec("ok") + `,{"id":"","content":"c","mood":"calm","tags":[],"createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := newTestJournal(t, nil, 0)
			j.unlock(t)
			before := seedJournal(t, j)

			_, err := j.Transfer.Import(testCtx(), strings.NewReader(tt.doc), models.FormatJSON)
			require.ErrorIs(t, err, ErrParseFailure)

			after, err := j.Entries.List()
			require.NoError(t, err)
			assert.Len(t, after, len(before))
		})
	}
}

func TestTransfer_Import_YAMLRejectsScalar(t *testing.T) {
	j := newTestJournal(t, nil, 0)
	j.unlock(t)

	_, err := j.Transfer.Import(testCtx(), strings.NewReader("just text"), models.FormatYAML)
	assert.ErrorIs(t, err, ErrParseFailure)
}

func TestTransfer_Import_Locked(t *testing.T) {
	j := newTestJournal(t, nil, 0)

	_, err := j.Transfer.Import(testCtx(), strings.NewReader("[]"), models.FormatJSON)
	assert.ErrorIs(t, err, ErrNotUnlocked)
}

func TestTransfer_Import_IsPersisted(t *testing.T) {
	slots := newCountingStore()
	j := newTestJournal(t, slots, 0)
	j.unlock(t)
	seedJournal(t, j)

	doc := `[{"id":"only","content":"c","mood":"meh","tags":[],"createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}]`
	_, err := j.Transfer.Import(testCtx(), strings.NewReader(doc), models.FormatJSON)
	require.NoError(t, err)
	require.NoError(t, j.Lock.Lock(testCtx()))
	assert.Equal(t, 1, slots.count(store.SlotEntries))

	j2 := newTestJournal(t, slots, 0)
	j2.unlock(t)
	list, err := j2.Entries.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "only", list[0].ID)
}

func TestTransfer_UnknownFormat(t *testing.T) {
	j := newTestJournal(t, nil, 0)
	j.unlock(t)

	_, err := j.Transfer.Export(testCtx(), testPassword, &bytes.Buffer{}, "xml")
	assert.ErrorIs(t, err, models.ErrUnknownFormat)
	_, err = j.Transfer.Import(testCtx(), strings.NewReader("[]"), "xml")
	assert.ErrorIs(t, err, models.ErrUnknownFormat)
}

func TestTransfer_YAMLExportIsReadable(t *testing.T) {
	j := newTestJournal(t, nil, 0)
	j.unlock(t)
	seedJournal(t, j)

	var buf bytes.Buffer
	_, err := j.Transfer.Export(testCtx(), testPassword, &buf, models.FormatYAML)
	require.NoError(t, err)

	var doc struct {
		Version int `yaml:"version"`
		Entries []struct {
			Mood string `yaml:"mood"`
		} `yaml:"entries"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 1, doc.Version)
	require.Len(t, doc.Entries, 2)
	assert.Equal(t, "sad", doc.Entries[0].Mood)
}
