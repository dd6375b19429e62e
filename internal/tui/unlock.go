package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

type unlockModel struct {
	input      textinput.Model
	spinner    spinner.Model
	hint       string
	showHint   bool
	submitting bool
}

func newUnlockModel() unlockModel {
	in := textinput.New()
	in.Placeholder = "passphrase"
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	in.Width = 40
	in.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return unlockModel{input: in, spinner: s}
}

func (m unlockModel) View() string {
	var b strings.Builder
	b.WriteString("The journal is locked.\n\n")
	b.WriteString("Passphrase: [" + m.input.View() + "]\n")

	if m.showHint {
		hint := m.hint
		if hint == "" {
			hint = "no hint set"
		}
		b.WriteString("\nHint: " + hint + "\n")
	}
	if m.submitting {
		b.WriteString("\n" + m.spinner.View() + " Deriving key...\n")
	}

	return renderPage("MOOD JOURNAL", b.String(), "enter: unlock  tab: show hint  esc: quit")
}
