package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the calculator key bindings.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Decrease  key.Binding
	Increase  key.Binding
	StepDown  key.Binding
	StepUp    key.Binding
	Calculate key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the calculator bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("↑/shift+tab", "previous field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↓/tab", "next field"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "increase"),
		),
		StepDown: key.NewBinding(
			key.WithKeys("shift+left", "pgdown"),
			key.WithHelp("shift+←", "decrease ×10"),
		),
		StepUp: key.NewBinding(
			key.WithKeys("shift+right", "pgup"),
			key.WithHelp("shift+→", "increase ×10"),
		),
		Calculate: key.NewBinding(
			key.WithKeys("enter", "c"),
			key.WithHelp("enter/c", "calculate"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Increase, k.Calculate, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Decrease, k.Increase, k.StepDown, k.StepUp},
		{k.Calculate, k.Reset},
		{k.Help, k.Quit},
	}
}
