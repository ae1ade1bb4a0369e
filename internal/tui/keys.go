package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the painter's key bindings.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Paint    key.Binding
	Auto     key.Binding
	Bracket  key.Binding
	Verify   key.Binding
	Push     key.Binding
	Tooltips key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev week"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next week"),
		),
		Paint: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "paint"),
		),
		Auto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto brush"),
		),
		Bracket: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "bracket brush"),
		),
		Verify: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "verify"),
		),
		Push: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "push"),
		),
		Tooltips: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tooltips"),
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
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Paint, k.Verify, k.Push, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Paint, k.Auto, k.Bracket},
		{k.Verify, k.Push, k.Tooltips},
		{k.Help, k.Quit},
	}
}

// setBracketHelp narrows the bracket binding's help to the palette size.
func (k *keyMap) setBracketHelp(brackets int) {
	if brackets <= 1 {
		k.Bracket.SetHelp("0", "bracket brush")
		return
	}
	last := min(brackets-1, 9)
	k.Bracket.SetHelp("0-"+string(rune('0'+last)), "bracket brush")
}
