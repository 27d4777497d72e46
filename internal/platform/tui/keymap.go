package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/monster-yard/internal/games/monsters"
)

// KeyMap defines the key bindings outside the typed action line.
type KeyMap struct {
	Submit key.Binding
	Quit   key.Binding
	Help   key.Binding

	// Actions are shown in the full help only; they are typed, not pressed.
	Actions []key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Actions,
		{k.Submit, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "act"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "flee"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
	}

	for _, w := range monsters.Weapons {
		k := string(w.Key())
		km.Actions = append(km.Actions, key.NewBinding(key.WithKeys(k), key.WithHelp(k, w.Name())))
	}
	km.Actions = append(km.Actions,
		key.NewBinding(key.WithKeys(string(monsters.KeyRange)), key.WithHelp(string(monsters.KeyRange), "increase range")),
		key.NewBinding(key.WithKeys(string(monsters.KeyUpgrade)), key.WithHelp(string(monsters.KeyUpgrade), "upgrade weapon level")),
	)
	return km
}
