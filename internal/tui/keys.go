package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	left        key.Binding
	right       key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	lock        key.Binding
	newItem     key.Binding
	search      key.Binding
	moodFilter  key.Binding
	tagFilter   key.Binding
	export      key.Binding
	importFile  key.Binding
	hint        key.Binding
	info        key.Binding
	edit        key.Binding
	delete      key.Binding
	copy        key.Binding
	copyReframe key.Binding
	save        key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	left:        key.NewBinding(key.WithKeys("left")),
	right:       key.NewBinding(key.WithKeys("right")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q")),
	lock:        key.NewBinding(key.WithKeys("l")),
	newItem:     key.NewBinding(key.WithKeys("n")),
	search:      key.NewBinding(key.WithKeys("/")),
	moodFilter:  key.NewBinding(key.WithKeys("m")),
	tagFilter:   key.NewBinding(key.WithKeys("t")),
	export:      key.NewBinding(key.WithKeys("x")),
	importFile:  key.NewBinding(key.WithKeys("i")),
	hint:        key.NewBinding(key.WithKeys("h")),
	info:        key.NewBinding(key.WithKeys("v")),
	edit:        key.NewBinding(key.WithKeys("e")),
	delete:      key.NewBinding(key.WithKeys("d")),
	copy:        key.NewBinding(key.WithKeys("c")),
	copyReframe: key.NewBinding(key.WithKeys("r")),
	save:        key.NewBinding(key.WithKeys("ctrl+s")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n")),
}
