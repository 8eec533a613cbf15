package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the explorer key bindings.
type KeyMap struct {
	PrevVariant key.Binding
	NextVariant key.Binding
	Grow        key.Binding
	Shrink      key.Binding
	Spin        key.Binding
	ToggleView  key.Binding
	Reset       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard explorer bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevVariant: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous metal"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next metal"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow magnitude"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shrink magnitude"),
		),
		Spin: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle rotation"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "spiral/rectangles"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevVariant, k.NextVariant, k.Grow, k.Shrink, k.Spin, k.ToggleView, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevVariant, k.NextVariant, k.Grow, k.Shrink},
		{k.Spin, k.ToggleView, k.Reset, k.Help, k.Quit},
	}
}
