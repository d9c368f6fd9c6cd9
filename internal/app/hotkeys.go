package app

import "charm.land/bubbles/v2/key"

// keyMap holds the bindings shown in the help line. Bindings that would
// write the selection are disabled while a gesture owns it.
type keyMap struct {
	Quit  key.Binding
	Copy  key.Binding
	Reset key.Binding
	Help  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy range"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *keyMap) setDragging(dragging bool) {
	k.Reset.SetEnabled(!dragging)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Copy, k.Reset},
		{k.Help, k.Quit},
	}
}
