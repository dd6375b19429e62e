package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-mood-journal/internal/app"
)

type exportModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newExportModel(defaultPath string) exportModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].SetValue(defaultPath)
	inputs[0].Focus()
	inputs[1].Placeholder = "passphrase"
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '•'

	return exportModel{inputs: inputs}
}

func (m exportModel) path() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

func (m exportModel) passphrase() string {
	return m.inputs[1].Value()
}

func (m exportModel) View() string {
	out := warnStyle.Render(app.MsgExportWarning) + "\n\n"
	out += "File:       [" + m.inputs[0].View() + "]\n"
	out += "Passphrase: [" + m.inputs[1].View() + "]\n"
	out += helpStyle.Render("Files ending in .yaml or .yml are written as YAML, anything else as JSON.")
	if m.submitting {
		out += "\n\nExporting..."
	}
	return renderPage("EXPORT", out, "tab next field  enter export  esc cancel")
}

type importModel struct {
	input      textinput.Model
	submitting bool
}

func newImportModel() importModel {
	in := textinput.New()
	in.Placeholder = "path to .json or .yaml export"
	in.Width = 50
	in.Focus()
	return importModel{input: in}
}

func (m importModel) path() string {
	return strings.TrimSpace(m.input.Value())
}

func (m importModel) View() string {
	out := "Importing replaces every entry in the journal.\n\n"
	out += "File: [" + m.input.View() + "]"
	if m.submitting {
		out += "\n\nImporting..."
	}
	return renderPage("IMPORT", out, "enter import  esc cancel")
}

type hintModel struct {
	input textinput.Model
}

func newHintModel(current string) hintModel {
	in := textinput.New()
	in.Placeholder = "leave empty to remove"
	in.Width = 50
	in.SetValue(current)
	in.Focus()
	return hintModel{input: in}
}

func (m hintModel) View() string {
	out := "The hint is stored unencrypted and shown on the lock screen.\n\n"
	out += "Hint: [" + m.input.View() + "]"
	return renderPage("PASSPHRASE HINT", out, "enter save  esc cancel")
}
