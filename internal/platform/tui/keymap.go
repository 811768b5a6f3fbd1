package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings shared by every widget. The chooser and the
// dial treat Prev/Next as the two turns of a rotary encoder.
type KeyMap struct {
	Prev       key.Binding
	Next       key.Binding
	Increase   key.Binding
	Decrease   key.Binding
	CoarseUp   key.Binding
	CoarseDown key.Binding
	Select     key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("up", "left", "k", "h"),
			key.WithHelp("up/left", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "right", "j", "l"),
			key.WithHelp("down/right", "next"),
		),
		Increase: key.NewBinding(
			key.WithKeys("up", "right", "k", "l", "+"),
			key.WithHelp("up/right", "increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("down", "left", "j", "h", "-"),
			key.WithHelp("down/left", "decrease"),
		),
		CoarseUp: key.NewBinding(
			key.WithKeys("pgup", "shift+up"),
			key.WithHelp("pgup", "x10 up"),
		),
		CoarseDown: key.NewBinding(
			key.WithKeys("pgdown", "shift+down"),
			key.WithHelp("pgdn", "x10 down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Increase, k.Decrease},
		{k.CoarseUp, k.CoarseDown},
		{k.Select, k.Back, k.Quit},
	}
}

// dialHelp adds coarse steps to the short help.
type dialHelp struct{ KeyMap }

func (k dialHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Increase, k.Decrease, k.CoarseUp, k.CoarseDown, k.Select}
}

// pagerHelp shows dismissal; scrolling uses the viewport's own keys.
type pagerHelp struct{ KeyMap }

func (k pagerHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Back, k.Quit}
}
