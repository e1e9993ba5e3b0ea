package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Begin   key.Binding
	Check   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Advance key.Binding
	Quit    key.Binding
	QuitAlt key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Begin: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Check: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "check answers"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev field"),
		),
		Advance: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next page"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		QuitAlt: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) startHelp() []key.Binding {
	return []key.Binding{k.Begin, k.QuitAlt}
}

func (k keyMap) pageHelp(advance string) []key.Binding {
	adv := k.Advance
	adv.SetHelp("ctrl+n", advance)
	return []key.Binding{k.Check, k.Next, k.Prev, adv, k.Quit}
}
