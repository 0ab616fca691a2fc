package tui

import "github.com/charmbracelet/bubbles/key"

type global struct {
	Quit key.Binding
}

// Printable keys belong to the composer, so quitting needs a control chord
var keys = global{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+d"),
	),
}
