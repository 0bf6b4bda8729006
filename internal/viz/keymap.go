package viz

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/entui/internal/nav"
)

type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Hex      key.Binding
	Reset    key.Binding
	Theme    key.Binding
	Overview key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "scroll left")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "scroll right")),
		ZoomIn:   key.NewBinding(key.WithKeys("up", "+", "="), key.WithHelp("↑/+", "zoom in")),
		ZoomOut:  key.NewBinding(key.WithKeys("down", "-", "_"), key.WithHelp("↓/-", "zoom out")),
		Hex:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hex offsets")),
		Reset:    key.NewBinding(key.WithKeys("r", "home"), key.WithHelp("r", "reset view")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Overview: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "overview")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.Left, k.Right, k.Hex, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.ZoomIn, k.ZoomOut},
		{k.Hex, k.Reset, k.Theme, k.Overview},
		{k.Help, k.Quit},
	}
}

// command maps a key press to a viewport command; nav.None when the key is
// not a navigation key.
func (k keyMap) command(msg tea.KeyMsg) nav.Command {
	switch {
	case key.Matches(msg, k.Left):
		return nav.PanLeft
	case key.Matches(msg, k.Right):
		return nav.PanRight
	case key.Matches(msg, k.ZoomIn):
		return nav.ZoomIn
	case key.Matches(msg, k.ZoomOut):
		return nav.ZoomOut
	case key.Matches(msg, k.Hex):
		return nav.ToggleHex
	case key.Matches(msg, k.Reset):
		return nav.Reset
	case key.Matches(msg, k.Quit):
		return nav.Quit
	}
	return nav.None
}
