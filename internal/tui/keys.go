package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/daptify14/keynav/internal/input"
)

// ── Host Bindings (checked before navigation input) ────────────────

type HostKeyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Switch key.Binding
	Back   key.Binding
	Hide   key.Binding
	Reload key.Binding
	Open   key.Binding
	Mouse  key.Binding
}

var HostKeys = HostKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Keys"),
	),
	Switch: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "List/grid"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	Hide: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "Hide item"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Reload"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "Open externally"),
	),
	Mouse: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "Mouse/copy mode"),
	),
}

// ── Help Key Maps ──────────────────────────────────────────────────

// screenKeyMap implements help.KeyMap for one screen.
type screenKeyMap struct {
	screen Screen
}

func (k screenKeyMap) ShortHelp() []key.Binding {
	nav := input.Keys
	switch k.screen {
	case GridScreen:
		return []key.Binding{nav.Up, nav.Left, nav.Activate, nav.ZoomIn, nav.ZoomOut, HostKeys.Switch, HostKeys.Help, HostKeys.Quit}
	case DocScreen:
		return []key.Binding{nav.Up, nav.Down, nav.Space, HostKeys.Back, HostKeys.Help, HostKeys.Quit}
	default:
		return []key.Binding{nav.Up, nav.Down, nav.Activate, nav.Clear, HostKeys.Switch, HostKeys.Help, HostKeys.Quit}
	}
}

// FullHelp puts host keys in the first column so quit survives the help
// view truncating columns on narrow terminals.
func (k screenKeyMap) FullHelp() [][]key.Binding {
	nav := input.Keys
	switch k.screen {
	case DocScreen:
		return [][]key.Binding{
			{HostKeys.Back, HostKeys.Open, HostKeys.Mouse, HostKeys.Help, HostKeys.Quit},
			{nav.Up, nav.Down, nav.Left, nav.Right},
			{nav.PageUp, nav.PageDown, nav.Space, nav.Home, nav.End},
			{nav.JumpStart, nav.JumpEnd},
		}
	case GridScreen:
		return append([][]key.Binding{hostHelp()}, nav.FullHelp()...)
	default:
		groups := nav.FullHelp()
		// Zoom only applies to the grid.
		return append([][]key.Binding{hostHelp()}, groups[:len(groups)-1]...)
	}
}

func hostHelp() []key.Binding {
	return []key.Binding{HostKeys.Switch, HostKeys.Open, HostKeys.Hide, HostKeys.Reload, HostKeys.Mouse, HostKeys.Help, HostKeys.Quit}
}
