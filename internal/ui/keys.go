package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the panel.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Commands
	StartPrint  key.Binding
	CancelPrint key.Binding
	ToggleLight key.Binding
	Refresh     key.Binding

	// Selection
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Pane   key.Binding
	Clear  key.Binding

	// Confirm modal
	Yes key.Binding
	No  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "theme"),
		),
		StartPrint: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start print"),
		),
		CancelPrint: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cancel print"),
		),
		ToggleLight: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "light"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh files"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Pane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "no"),
		),
	}
}
