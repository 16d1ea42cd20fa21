package browse

import (
	"github.com/charmbracelet/bubbles/key"

	"materi/internal/app/ui/components"
)

// KeyMap defines the key bindings for the materials view
type KeyMap struct {
	components.KeyMap
	NextWeek   key.Binding
	PrevWeek   key.Binding
	NextVideo  key.Binding
	PrevVideo  key.Binding
	Complete   key.Binding
	ToggleTips key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	base := components.DefaultKeyMap()

	base.Up.SetHelp("↑/k", "prev course")
	base.Down.SetHelp("↓/j", "next course")

	return KeyMap{
		KeyMap: base,
		NextWeek: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next week"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev week"),
		),
		NextVideo: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next video"),
		),
		PrevVideo: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev video"),
		),
		Complete: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "mark complete"),
		),
		ToggleTips: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tips"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextWeek, k.Up, k.Down, k.PrevVideo, k.NextVideo, k.Complete, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextWeek, k.PrevWeek},
		{k.Up, k.Down, k.PrevVideo, k.NextVideo},
		{k.Complete, k.ToggleTips, k.Help, k.Quit, k.ForceQuit},
	}
}
