package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mood-journal/internal/analyzer"
	"github.com/MKhiriev/go-mood-journal/internal/richtext"
	"github.com/MKhiriev/go-mood-journal/models"
)

type detailModel struct {
	entry    models.JournalEntry
	stats    models.EntryStats
	analysis models.Analysis
	status   string
}

func newDetailModel(e models.JournalEntry, stats models.EntryStats, a *analyzer.Analyzer) detailModel {
	return detailModel{
		entry:    e,
		stats:    stats,
		analysis: a.Analyze(richtext.Strip(e.Content)),
	}
}

// plainText is what the copy action puts on the clipboard.
func (m detailModel) plainText() string {
	return strings.Join(richtext.Paragraphs(m.entry.Content), "\n\n")
}

// reframe returns the suggestion of the first finding, if any.
func (m detailModel) reframe() (string, bool) {
	if len(m.analysis.Findings) == 0 {
		return "", false
	}
	return m.analysis.Findings[0].Reframe, true
}

func (m detailModel) View() string {
	var b strings.Builder

	b.WriteString(moodBadge(m.entry.Mood) + "   " + formatTime(m.entry.CreatedAt))
	if !m.entry.UpdatedAt.Equal(m.entry.CreatedAt) {
		b.WriteString("  (edited " + formatTime(m.entry.UpdatedAt) + ")")
	}
	b.WriteString("\n\n")

	paragraphs := richtext.Paragraphs(m.entry.Content)
	if len(paragraphs) == 0 {
		b.WriteString("(empty)\n")
	}
	for _, p := range paragraphs {
		b.WriteString(p + "\n")
	}

	b.WriteString("\nTags: " + valueOrDash(strings.Join(m.entry.Tags, ", ")) + "\n")
	b.WriteString(fmt.Sprintf("%d words, %d characters, ~%d min read\n", m.stats.Words, m.stats.Chars, m.stats.ReadMinutes))

	b.WriteString("\n" + renderAnalysis(m.entry.Mood, m.analysis))

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("ENTRY", b.String(), "e edit  d delete  c copy  r copy reframe  esc back")
}

func renderAnalysis(mood models.Mood, a models.Analysis) string {
	var b strings.Builder
	if len(a.Findings) == 0 {
		b.WriteString("No thinking traps spotted.\n")
	} else {
		b.WriteString(fmt.Sprintf("Thinking traps (score %d):\n", a.Score))
		for _, f := range a.Findings {
			b.WriteString(warnStyle.Render("• "+string(f.Type)) + ": " + f.Tip + "\n")
			b.WriteString("  Try: " + f.Reframe + "\n")
		}
	}
	b.WriteString("\n" + helpStyle.Render(analyzer.Nudge(mood, a)) + "\n")
	return b.String()
}
