package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-mood-journal/internal/richtext"
	"github.com/MKhiriev/go-mood-journal/models"
)

type listModel struct {
	items      []models.JournalEntry
	idx        int
	loading    bool
	tags       []string
	search     textinput.Model
	searching  bool
	moodFilter int
	tagFilter  int
	status     string
	saveErr    error
	unsaved    bool
}

func newListModel() listModel {
	in := textinput.New()
	in.Placeholder = "search"
	in.Width = 30
	return listModel{search: in, loading: true, moodFilter: -1, tagFilter: -1}
}

func (m listModel) current() (models.JournalEntry, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.JournalEntry{}, false
	}
	return m.items[m.idx], true
}

func (m *listModel) setItems(items []models.JournalEntry) {
	m.items = items
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// query builds the repository filter from the search box and the mood and
// tag selectors.
func (m listModel) query() models.SearchQuery {
	q := models.SearchQuery{Text: m.search.Value()}
	if moods := models.Moods(); m.moodFilter >= 0 && m.moodFilter < len(moods) {
		mood := moods[m.moodFilter].ID
		q.Mood = &mood
	}
	if m.tagFilter >= 0 && m.tagFilter < len(m.tags) {
		q.Tag = m.tags[m.tagFilter]
	}
	return q
}

func (m *listModel) cycleMood() {
	m.moodFilter++
	if m.moodFilter >= len(models.Moods()) {
		m.moodFilter = -1
	}
}

func (m *listModel) cycleTag() {
	m.tagFilter++
	if m.tagFilter >= len(m.tags) {
		m.tagFilter = -1
	}
}

func (m listModel) filtered() bool {
	return m.search.Value() != "" || m.moodFilter >= 0 || m.tagFilter >= 0
}

func (m *listModel) clearFilters() {
	m.search.SetValue("")
	m.moodFilter = -1
	m.tagFilter = -1
}

func entryTitle(e models.JournalEntry) string {
	paragraphs := richtext.Paragraphs(e.Content)
	if len(paragraphs) == 0 {
		return "(empty)"
	}
	return paragraphs[0]
}

func (m listModel) View() string {
	var b strings.Builder

	q := m.query()
	filters := []string{}
	if m.searching || q.Text != "" {
		filters = append(filters, "search: ["+m.search.View()+"]")
	}
	if q.Mood != nil {
		filters = append(filters, "mood: "+q.Mood.Label())
	}
	if q.Tag != "" {
		filters = append(filters, "tag: "+q.Tag)
	}
	if len(filters) > 0 {
		b.WriteString(strings.Join(filters, "  ") + "\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0 && m.filtered():
		b.WriteString("Nothing matches\n")
	case len(m.items) == 0:
		b.WriteString("No entries yet. Press n to write one.\n")
	default:
		for i, e := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s  %s  %s", cursor, formatTime(e.UpdatedAt), moodBadge(e.Mood), fitText(entryTitle(e), 40))
			if len(e.Tags) > 0 {
				line += "  #" + strings.Join(e.Tags, " #")
			}
			b.WriteString(line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	switch {
	case m.saveErr != nil:
		b.WriteString("\n" + warnStyle.Render("Not saved yet: "+humanizeError(m.saveErr)) + "\n")
	case m.unsaved:
		b.WriteString("\n" + helpStyle.Render("Saving changes…") + "\n")
	}

	help := "n new  enter open  / search  m mood  t tag  x export  i import  h hint  l lock  v about  q quit"
	if m.searching {
		help = "enter apply  esc clear"
	}
	return renderPage(fmt.Sprintf("MOOD JOURNAL (%d)", len(m.items)), b.String(), help)
}
