package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Back       key.Binding
	Reload     key.Binding
	Products   key.Binding
	Counter    key.Binding
	Requests   key.Binding

	// List
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Open   key.Binding

	// Detail
	NextProduct key.Binding
	PrevProduct key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding

	// Counter
	Increment     key.Binding
	Decrement     key.Binding
	ResetCounter  key.Binding
	CustomAmount  key.Binding
	ConfirmAmount key.Binding
	CancelAmount  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "Back"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload view"),
		),
		Products: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Products"),
		),
		Counter: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Counter"),
		),
		Requests: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Request log"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "l"),
			key.WithHelp("enter", "Details"),
		),

		NextProduct: key.NewBinding(
			key.WithKeys("]", "n"),
			key.WithHelp("]", "Next product"),
		),
		PrevProduct: key.NewBinding(
			key.WithKeys("[", "N"),
			key.WithHelp("[", "Previous product"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up", "pgup", "ctrl+u"),
			key.WithHelp("k/pgup", "Scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down", "pgdown", "ctrl+d"),
			key.WithHelp("j/pgdown", "Scroll down"),
		),

		Increment: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Increment"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Decrement"),
		),
		ResetCounter: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "Reset to zero"),
		),
		CustomAmount: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add custom amount"),
		),
		ConfirmAmount: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Apply amount"),
		),
		CancelAmount: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.Open},
		{k.Back, k.NextProduct, k.PrevProduct, k.ScrollUp, k.ScrollDown},
		{k.Increment, k.Decrement, k.ResetCounter, k.CustomAmount},
		{k.Products, k.Counter, k.Requests, k.Reload, k.CycleTheme, k.Help, k.Quit},
	}
}
