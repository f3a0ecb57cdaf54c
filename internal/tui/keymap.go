package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Search       key.Binding
	ToggleSelect key.Binding
	EditQuantity key.Binding
	Confirm      key.Binding
	Cancel       key.Binding

	// Steps
	NextStep key.Binding
	PrevStep key.Binding
	Submit   key.Binding
	NewQuote key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ToggleSelect: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("Space/x", "select/deselect"),
		),
		EditQuantity: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit quantity"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel"),
		),
		NextStep: key.NewBinding(
			key.WithKeys("r", "tab"),
			key.WithHelp("r", "review quote"),
		),
		PrevStep: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "back to selection"),
		),
		Submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save quote"),
		),
		NewQuote: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "new quote"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.ToggleSelect, k.NextStep, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Search},
		{k.ToggleSelect, k.EditQuantity, k.Confirm},
		{k.NextStep, k.PrevStep, k.Submit},
		{k.Help, k.Quit},
	}
}
