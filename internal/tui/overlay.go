package tui

import "strings"

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayError
	overlayConfirm
)

// overlay is the modal box drawn under the active screen. Only one is shown
// at a time; an error replaces a pending question.
type overlay struct {
	kind    overlayKind
	message string
}

func (o overlay) active(kind overlayKind) bool {
	return o.kind == kind
}

func (o overlay) View() string {
	var title, help string
	switch o.kind {
	case overlayError:
		title, help = errorStyle.Render("Something went wrong"), "enter/esc: close"
	case overlayConfirm:
		title, help = warnStyle.Render("Are you sure?"), "y: yes  n/esc: no"
	default:
		return ""
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(o.message)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(help))
	return overlayBoxStyle.Render(b.String())
}
