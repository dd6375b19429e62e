package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-mood-journal/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warnStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// ANSI 256 approximations of the mood color names.
var moodColors = map[string]lipgloss.Color{
	"gold":           lipgloss.Color("220"),
	"skyblue":        lipgloss.Color("117"),
	"grey":           lipgloss.Color("245"),
	"cornflowerblue": lipgloss.Color("69"),
	"red":            lipgloss.Color("196"),
	"purple":         lipgloss.Color("135"),
	"seagreen":       lipgloss.Color("29"),
}

func moodBadge(m models.Mood) string {
	style := lipgloss.NewStyle().Foreground(moodColors[m.Color()])
	return style.Render(m.Emoji() + " " + m.Label())
}
