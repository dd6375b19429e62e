package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mood-journal/internal/analyzer"
	"github.com/MKhiriev/go-mood-journal/internal/richtext"
	"github.com/MKhiriev/go-mood-journal/models"
)

type editorFocus int

const (
	focusContent editorFocus = iota
	focusMood
	focusTags
	editorFields
)

const defaultEditorWidth = 72

type editorModel struct {
	entry    models.JournalEntry
	content  textarea.Model
	tags     textinput.Model
	moods    []models.MoodInfo
	mood     int
	focus    editorFocus
	analyzer *analyzer.Analyzer
	analysis models.Analysis

	dirty      bool
	submitting bool
}

func newEditorModel(e models.JournalEntry, a *analyzer.Analyzer, width int) editorModel {
	content := textarea.New()
	content.Placeholder = "How are you feeling?"
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.MaxHeight = 0
	content.SetHeight(10)
	content.SetValue(strings.Join(richtext.Paragraphs(e.Content), "\n"))
	content.Focus()

	tags := textinput.New()
	tags.Placeholder = "comma separated"
	tags.Width = 50
	tags.SetValue(strings.Join(e.Tags, ", "))

	m := editorModel{
		entry:    e,
		content:  content,
		tags:     tags,
		moods:    models.Moods(),
		analyzer: a,
	}
	for i, info := range m.moods {
		if info.ID == e.Mood {
			m.mood = i
		}
	}
	m.setWidth(width)
	m.reanalyze()
	return m
}

func (m *editorModel) setWidth(width int) {
	w := width - 8
	if width <= 0 || w > defaultEditorWidth {
		w = defaultEditorWidth
	}
	m.content.SetWidth(w)
}

func (m *editorModel) reanalyze() {
	m.analysis = m.analyzer.Analyze(m.content.Value())
}

func (m editorModel) selectedMood() models.Mood {
	return m.moods[m.mood].ID
}

func (m *editorModel) shiftMood(delta int) {
	m.mood = (m.mood + delta + len(m.moods)) % len(m.moods)
	m.dirty = true
}

func (m *editorModel) setFocus(f editorFocus) {
	m.content.Blur()
	m.tags.Blur()
	m.focus = (f + editorFields) % editorFields
	switch m.focus {
	case focusContent:
		m.content.Focus()
	case focusTags:
		m.tags.Focus()
	}
}

// update forwards msg to the focused field and tracks whether the entry
// changed.
func (m editorModel) update(msg tea.Msg) (editorModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusContent:
		before := m.content.Value()
		m.content, cmd = m.content.Update(msg)
		if m.content.Value() != before {
			m.dirty = true
			m.reanalyze()
		}
	case focusTags:
		before := m.tags.Value()
		m.tags, cmd = m.tags.Update(msg)
		if m.tags.Value() != before {
			m.dirty = true
		}
	}
	return m, cmd
}

func (m editorModel) patch() models.EntryPatch {
	content := richtext.FromText(m.content.Value())
	mood := m.selectedMood()
	tags := splitTags(m.tags.Value())
	return models.EntryPatch{Content: &content, Mood: &mood, Tags: &tags}
}

func (m editorModel) View() string {
	var b strings.Builder

	moodLine := "  " + moodBadge(m.selectedMood()) + "  "
	if m.focus == focusMood {
		moodLine = "< " + moodBadge(m.selectedMood()) + " >"
	}
	b.WriteString("Mood: " + moodLine + "\n\n")
	b.WriteString(m.content.View() + "\n\n")
	b.WriteString("Tags: [" + m.tags.View() + "]\n")

	stats := richtext.Stats(richtext.FromText(m.content.Value()))
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d words, ~%d min read", stats.Words, stats.ReadMinutes)) + "\n\n")
	b.WriteString(renderAnalysis(m.selectedMood(), m.analysis))

	title := "EDIT ENTRY"
	if m.dirty {
		title += " *"
	}
	if m.submitting {
		title += " (saving)"
	}
	return renderPage(title, b.String(), "tab next field  ←/→ mood  ctrl+s save  esc save and close")
}
