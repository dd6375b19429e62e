// Package richtext turns the editor's HTML-ish markup into plain text and
// derives word statistics from it.
package richtext

import (
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/MKhiriev/go-mood-journal/models"
)

// WordsPerMinute is the reading speed used by [ReadMinutes].
const WordsPerMinute = 180

var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Li: true, atom.Ul: true, atom.Ol: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Blockquote: true, atom.Pre: true, atom.Tr: true, atom.Td: true, atom.Th: true, atom.Hr: true,
	atom.Section: true, atom.Article: true,
}

// Strip returns the visible text of markup: tags are removed, entities are
// decoded, block boundaries become spaces and runs of whitespace collapse to
// a single space. Text inside script and style elements is dropped.
func Strip(markup string) string {
	var sb strings.Builder
	walk(markup, func(b []byte) { sb.Write(b) }, func() { sb.WriteByte(' ') })
	return collapse(sb.String())
}

// Paragraphs splits the visible text of markup at block boundaries. Each
// paragraph is collapsed like [Strip]; empty ones are dropped.
func Paragraphs(markup string) []string {
	var (
		out []string
		sb  strings.Builder
	)
	flush := func() {
		if p := collapse(sb.String()); p != "" {
			out = append(out, p)
		}
		sb.Reset()
	}
	walk(markup, func(b []byte) { sb.Write(b) }, flush)
	flush()
	return out
}

// FromText converts plain text into markup, one paragraph per non-blank
// line.
func FromText(text string) string {
	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sb.WriteString("<p>")
		sb.WriteString(html.EscapeString(line))
		sb.WriteString("</p>")
	}
	return sb.String()
}

func walk(markup string, text func([]byte), block func()) {
	if markup == "" {
		return
	}

	z := html.NewTokenizer(strings.NewReader(markup))
	skip := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF; a strings.Reader has no other failure mode
			return

		case html.TextToken:
			if skip == 0 {
				text(z.Text())
			}

		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if a == atom.Script || a == atom.Style {
				switch tt {
				case html.StartTagToken:
					skip++
				case html.EndTagToken:
					if skip > 0 {
						skip--
					}
				}
				continue
			}
			if blockElements[a] {
				block()
			}
		}
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// WordCount returns the number of whitespace-separated words in the plain
// text of markup.
func WordCount(markup string) int {
	return len(strings.Fields(Strip(markup)))
}

// ReadMinutes estimates the reading time of words; it is never below one.
func ReadMinutes(words int) int {
	m := int(math.Round(float64(words) / WordsPerMinute))
	if m < 1 {
		return 1
	}
	return m
}

// Stats computes word, character and reading-time figures for markup.
func Stats(markup string) models.EntryStats {
	text := Strip(markup)
	words := len(strings.Fields(text))

	return models.EntryStats{
		Words:       words,
		Chars:       utf8.RuneCountInString(text),
		ReadMinutes: ReadMinutes(words),
	}
}
